package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/latex"
	"github.com/jonathan/resume-engine/internal/rendering"
)

var (
	renderInput  string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON file to LaTeX or PDF",
	Long: `Render a resume payload file to a .tex document, or compile it to PDF when
the output path ends in .pdf (requires pdflatex on PATH).`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to resume payload JSON file")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "resume.tex", "Output path (.tex or .pdf)")
	_ = renderCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	version, err := loadVersionFile(renderInput)
	if err != nil {
		return err
	}

	document := rendering.AssembleDocument(version)

	if !strings.HasSuffix(renderOutput, ".pdf") {
		if err := os.WriteFile(renderOutput, []byte(document), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", renderOutput, err)
		}
		fmt.Printf("Wrote %s\n", renderOutput)
		return nil
	}

	compiler, err := latex.NewCompiler()
	if err != nil {
		return err
	}
	outputName := strings.TrimSuffix(filepath.Base(renderOutput), ".pdf")
	pdf, err := compiler.Compile(context.Background(), document, outputName)
	if err != nil {
		return err
	}
	if err := os.WriteFile(renderOutput, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", renderOutput, len(pdf))
	return nil
}
