package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/db"
	"github.com/jonathan/resume-engine/internal/latex"
	"github.com/jonathan/resume-engine/internal/llm"
	"github.com/jonathan/resume-engine/internal/resume"
	"github.com/jonathan/resume-engine/internal/server"
	"github.com/jonathan/resume-engine/internal/tailoring"
	"github.com/jonathan/resume-engine/internal/versions"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing resume version management, validation, generation, tailoring and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr = serveAddr
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or database_url in config)")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	compiler, err := latex.NewCompilerWithBinary(cfg.LatexBinary)
	if err != nil {
		database.Close()
		return err
	}

	var summarizer *tailoring.Summarizer
	var llmClient llm.Client
	if cfg.APIKey != "" {
		llmClient, err = llm.NewClient(ctx, nil, cfg.APIKey)
		if err != nil {
			database.Close()
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		summarizer = tailoring.NewSummarizer(llmClient)
	}

	manager := versions.NewManager(db.NewVersionStore(database))
	service := resume.NewService(manager, compiler, summarizer, database)

	srv := server.New(server.Config{
		Addr:            cfg.ListenAddr,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, service)
	srv.OnShutdown(func() {
		if llmClient != nil {
			_ = llmClient.Close()
		}
		database.Close()
	})

	return srv.Start()
}
