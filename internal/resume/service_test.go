package resume

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-engine/internal/llm"
	"github.com/jonathan/resume-engine/internal/tailoring"
	"github.com/jonathan/resume-engine/internal/types"
	"github.com/jonathan/resume-engine/internal/validation"
	"github.com/jonathan/resume-engine/internal/versions"
)

type fakeCompiler struct {
	lastDocument string
	lastName     string
	calls        int
}

func (f *fakeCompiler) Compile(ctx context.Context, document string, outputName string) ([]byte, error) {
	f.calls++
	f.lastDocument = document
	f.lastName = outputName
	return []byte("%PDF-1.4 fake"), nil
}

func completeVersion(ownerID uuid.UUID) *types.ResumeVersion {
	return &types.ResumeVersion{
		OwnerID:   ownerID,
		DraftName: "Base Resume",
		Summary:   "Backend developer.",
		Contact:   &types.ContactInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
		Education: []types.EducationEntry{{Institution: "State University", Degree: "BSc"}},
		Projects:  []types.ProjectEntry{{Title: "Compiler", Description: "A compiler."}},
		TechnicalSkills: &types.TechnicalSkills{
			Languages: types.StringList{"Python", "Go"},
		},
	}
}

func newTestService(t *testing.T) (*Service, *fakeCompiler, uuid.UUID, *types.ResumeVersion) {
	t.Helper()
	manager := versions.NewManager(versions.NewMemoryStore())
	compiler := &fakeCompiler{}
	svc := NewService(manager, compiler, nil, nil)

	ownerID := uuid.New()
	created, err := manager.Create(context.Background(), completeVersion(ownerID))
	require.NoError(t, err)
	return svc, compiler, ownerID, created
}

func TestGenerate_CompilesCompleteVersion(t *testing.T) {
	svc, compiler, ownerID, version := newTestService(t)

	pdf, err := svc.Generate(context.Background(), ownerID, version.ID)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
	assert.Equal(t, "Base_Resume", compiler.lastName)
	assert.Contains(t, compiler.lastDocument, "Ada Lovelace")
}

func TestGenerate_RejectsIncompleteVersion(t *testing.T) {
	manager := versions.NewManager(versions.NewMemoryStore())
	compiler := &fakeCompiler{}
	svc := NewService(manager, compiler, nil, nil)

	ownerID := uuid.New()
	version, err := manager.Create(context.Background(), &types.ResumeVersion{
		OwnerID: ownerID,
		Contact: &types.ContactInfo{Name: "Ada"},
	})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), ownerID, version.ID)

	var incomplete *validation.IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.NotEmpty(t, incomplete.Missing)
	assert.Zero(t, compiler.calls, "compiler must not run for incomplete versions")
}

func TestGenerate_UnknownVersion(t *testing.T) {
	svc, _, ownerID, _ := newTestService(t)

	_, err := svc.Generate(context.Background(), ownerID, uuid.New())

	var notFound *versions.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestExport_TeXSkipsCompiler(t *testing.T) {
	svc, compiler, ownerID, version := newTestService(t)

	data, filename, err := svc.Export(context.Background(), ownerID, version.ID, FormatTeX)

	require.NoError(t, err)
	assert.Equal(t, "Base_Resume.tex", filename)
	assert.Contains(t, string(data), `\begin{document}`)
	assert.Zero(t, compiler.calls)
}

func TestExport_PDFRegeneratesEachCall(t *testing.T) {
	svc, compiler, ownerID, version := newTestService(t)

	_, filename, err := svc.Export(context.Background(), ownerID, version.ID, FormatPDF)
	require.NoError(t, err)
	_, _, err = svc.Export(context.Background(), ownerID, version.ID, FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "Base_Resume.pdf", filename)
	assert.Equal(t, 2, compiler.calls)
}

func TestCreateDraft_ClonesBase(t *testing.T) {
	svc, _, ownerID, base := newTestService(t)

	draft, err := svc.CreateDraft(context.Background(), ownerID, "Acme Draft", nil)

	require.NoError(t, err)
	assert.Equal(t, "Acme Draft", draft.DraftName)
	assert.False(t, draft.IsBaseVersion)
	assert.Equal(t, base.Summary, draft.Summary)
	require.NotNil(t, draft.ParentVersionID)
	assert.Equal(t, base.ID, *draft.ParentVersionID)
}

type stubLLM struct {
	response string
}

func (s stubLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.response, nil
}

func (s stubLLM) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return s.response, nil
}

func (s stubLLM) Close() error { return nil }

func TestTailor_DeterministicScore(t *testing.T) {
	svc, _, ownerID, base := newTestService(t)

	result, err := svc.Tailor(context.Background(), ownerID, TailorRequest{
		DraftName:      "Acme Backend",
		JobDescription: "Required: Python, SQL, Docker.",
	})

	require.NoError(t, err)
	assert.Equal(t, 33, result.Match.Score)
	assert.Equal(t, []string{"python"}, result.Match.MatchedSkills)
	assert.Equal(t, []string{"sql", "docker"}, result.Match.MissingSkills)
	assert.Empty(t, result.TailoredSummary, "no summarizer configured")

	require.NotNil(t, result.Version.MatchScore)
	assert.Equal(t, 33, *result.Version.MatchScore)
	assert.Equal(t, "Required: Python, SQL, Docker.", result.Version.JobDescription)
	require.NotNil(t, result.Version.ParentVersionID)
	assert.Equal(t, base.ID, *result.Version.ParentVersionID)
}

func TestTailor_PersistsVersion(t *testing.T) {
	svc, _, ownerID, _ := newTestService(t)

	result, err := svc.Tailor(context.Background(), ownerID, TailorRequest{
		JobDescription: "We use Go and Postgres.",
	})
	require.NoError(t, err)

	stored, err := svc.Versions.Get(context.Background(), ownerID, result.Version.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.MatchScore)
	assert.Equal(t, result.Match.Score, *stored.MatchScore)
}

func TestTailor_WithSummarizer(t *testing.T) {
	manager := versions.NewManager(versions.NewMemoryStore())
	ownerID := uuid.New()
	_, err := manager.Create(context.Background(), completeVersion(ownerID))
	require.NoError(t, err)

	summarizer := tailoring.NewSummarizer(stubLLM{
		response: `{"tailored_summary": "Python developer for Acme.", "notes": ["lead with Python"]}`,
	})
	svc := NewService(manager, &fakeCompiler{}, summarizer, nil)

	result, err := svc.Tailor(context.Background(), ownerID, TailorRequest{
		JobDescription: "Python required.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Python developer for Acme.", result.TailoredSummary)
	assert.Equal(t, "Python developer for Acme.", result.Version.Summary)
	assert.Equal(t, []string{"lead with Python"}, result.Suggestions)
}
