package tailoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-engine/internal/llm"
)

const summaryTimeout = 20 * time.Second

// SummaryRequest carries the context the rewriter uses to tailor a summary.
type SummaryRequest struct {
	CurrentSummary string
	GoalRole       string
	JobDescription string
	MatchedSkills  []string
	MissingSkills  []string
}

// Suggestions is the LLM's tailored output. Zero value means the rewrite was
// unavailable and the caller should keep the original content.
type Suggestions struct {
	TailoredSummary string   `json:"tailored_summary"`
	Emphasize       []string `json:"emphasize"`
	Notes           []string `json:"notes"`
}

// Summarizer rewrites a resume summary for a specific job posting. It never
// fails the tailoring flow: when the client is nil, the call times out, or
// the response is unusable, it returns empty Suggestions.
type Summarizer struct {
	client  llm.Client
	timeout time.Duration
}

// NewSummarizer returns a Summarizer over the given client, which may be nil.
func NewSummarizer(client llm.Client) *Summarizer {
	return &Summarizer{client: client, timeout: summaryTimeout}
}

// Tailor produces a job-specific summary rewrite and emphasis suggestions.
func (s *Summarizer) Tailor(ctx context.Context, req SummaryRequest) Suggestions {
	if s == nil || s.client == nil {
		return Suggestions{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.GenerateJSON(ctx, buildSummaryPrompt(req), llm.TierStandard)
	if err != nil {
		log.Warn().Err(err).Msg("summary tailoring unavailable, keeping original")
		return Suggestions{}
	}

	var out Suggestions
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Warn().Err(err).Msg("summary tailoring returned malformed JSON, keeping original")
		return Suggestions{}
	}
	out.TailoredSummary = strings.TrimSpace(out.TailoredSummary)
	return out
}

func buildSummaryPrompt(req SummaryRequest) string {
	var b strings.Builder
	b.WriteString("Rewrite the professional summary below to target the given job posting.\n")
	b.WriteString("Keep it truthful: only reference skills from the matched list.\n")
	b.WriteString("Respond with JSON: {\"tailored_summary\": string, \"emphasize\": [string], \"notes\": [string]}.\n\n")
	if req.GoalRole != "" {
		fmt.Fprintf(&b, "Target role: %s\n", req.GoalRole)
	}
	if len(req.MatchedSkills) > 0 {
		fmt.Fprintf(&b, "Matched skills: %s\n", strings.Join(req.MatchedSkills, ", "))
	}
	if len(req.MissingSkills) > 0 {
		fmt.Fprintf(&b, "Skills the posting wants but the candidate lacks: %s\n", strings.Join(req.MissingSkills, ", "))
	}
	fmt.Fprintf(&b, "\nCurrent summary:\n%s\n", req.CurrentSummary)
	fmt.Fprintf(&b, "\nJob posting:\n%s\n", req.JobDescription)
	return b.String()
}
