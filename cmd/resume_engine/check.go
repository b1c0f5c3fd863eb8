package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/validation"
)

var checkInput string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a resume JSON file for completeness",
	Long:  `Report which tracked sections are missing from a resume payload file and whether it is complete enough to generate a document.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "in", "i", "", "Path to resume payload JSON file")
	_ = checkCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	version, err := loadVersionFile(checkInput)
	if err != nil {
		return err
	}

	result := validation.Validate(version, nil)

	fmt.Printf("Completion: %d%%\n", result.CompletionPercentage)
	if result.IsComplete {
		fmt.Println("All required sections are present.")
		return nil
	}

	fmt.Println("Missing sections:")
	for _, section := range result.MissingSections {
		marker := "optional"
		if section.IsRequired {
			marker = "required"
		}
		fmt.Printf("  - %s (%s): %s\n", section.SectionKind, marker, section.Prompt)
	}
	return &validation.IncompleteError{Missing: result.MissingSections}
}
