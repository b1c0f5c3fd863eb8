// Package main provides the entry point for the resume engine CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/logger"
)

var (
	flagConfigPath string
	flagLogLevel   string
	flagLogJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_engine",
	Short: "Resume document generation and versioning engine",
	Long:  "Generates LaTeX resumes from structured section data, compiles them to PDF, and manages tailored versions scored against job descriptions.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Init(flagLogLevel, flagLogJSON)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config.json file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Emit logs as JSON instead of console output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
