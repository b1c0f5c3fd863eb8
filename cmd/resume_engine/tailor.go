package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-engine/internal/fetch"
	"github.com/jonathan/resume-engine/internal/llm"
	"github.com/jonathan/resume-engine/internal/tailoring"
)

var (
	tailorInput  string
	tailorJob    string
	tailorJobURL string
	tailorAPIKey string
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Score a resume against a job description",
	Long: `Score a resume payload file against a job description (text file or URL) and
print the matched and missing skills. With an API key, also request a tailored
summary from the model; model failures fall back to the deterministic score.`,
	RunE: runTailor,
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorInput, "in", "i", "", "Path to resume payload JSON file")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch the job posting from")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	_ = tailorCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	if tailorJob == "" && tailorJobURL == "" {
		return fmt.Errorf("one of --job or --job-url is required")
	}
	if tailorJob != "" && tailorJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	ctx := context.Background()

	version, err := loadVersionFile(tailorInput)
	if err != nil {
		return err
	}

	var jobText string
	if tailorJob != "" {
		data, err := os.ReadFile(tailorJob)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", tailorJob, err)
		}
		jobText = string(data)
	} else {
		jobText, err = fetch.JobDescription(ctx, tailorJobURL, nil)
		if err != nil {
			return err
		}
	}

	match := tailoring.Match(jobText, version.SkillInventory())

	output := map[string]any{
		"match_score":    match.Score,
		"matched_skills": match.MatchedSkills,
		"missing_skills": match.MissingSkills,
	}

	apiKey := tailorAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" && strings.TrimSpace(version.Summary) != "" {
		client, err := llm.NewClient(ctx, nil, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		suggestions := tailoring.NewSummarizer(client).Tailor(ctx, tailoring.SummaryRequest{
			CurrentSummary: version.Summary,
			JobDescription: jobText,
			MatchedSkills:  match.MatchedSkills,
			MissingSkills:  match.MissingSkills,
		})
		if suggestions.TailoredSummary != "" {
			output["tailored_summary"] = suggestions.TailoredSummary
		}
		if len(suggestions.Notes) > 0 {
			output["suggestions"] = suggestions.Notes
		}
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
