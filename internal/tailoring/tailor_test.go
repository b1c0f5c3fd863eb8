package tailoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-engine/internal/llm"
)

type stubClient struct {
	response string
	err      error
	prompt   string
}

func (s *stubClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func TestSummarizer_Tailor(t *testing.T) {
	client := &stubClient{response: `{"tailored_summary": "Backend developer with Python.", "emphasize": ["python"]}`}
	s := NewSummarizer(client)

	out := s.Tailor(context.Background(), SummaryRequest{
		CurrentSummary: "Developer.",
		GoalRole:       "Backend Developer",
		JobDescription: "Python required.",
		MatchedSkills:  []string{"python"},
		MissingSkills:  []string{"sql"},
	})

	assert.Equal(t, "Backend developer with Python.", out.TailoredSummary)
	assert.Equal(t, []string{"python"}, out.Emphasize)
	assert.Contains(t, client.prompt, "Matched skills: python")
	assert.Contains(t, client.prompt, "sql")
}

func TestSummarizer_NilClient(t *testing.T) {
	s := NewSummarizer(nil)

	out := s.Tailor(context.Background(), SummaryRequest{CurrentSummary: "Developer."})

	assert.Empty(t, out.TailoredSummary)
}

func TestSummarizer_ClientError(t *testing.T) {
	s := NewSummarizer(&stubClient{err: errors.New("quota exceeded")})

	out := s.Tailor(context.Background(), SummaryRequest{CurrentSummary: "Developer."})

	assert.Empty(t, out.TailoredSummary)
}

func TestSummarizer_MalformedJSON(t *testing.T) {
	s := NewSummarizer(&stubClient{response: "not json"})

	out := s.Tailor(context.Background(), SummaryRequest{CurrentSummary: "Developer."})

	assert.Empty(t, out.TailoredSummary)
}
