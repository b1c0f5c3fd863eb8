// Package resume ties rendering, compilation, validation, versioning and
// tailoring into the engine's top-level operations.
package resume

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-engine/internal/fetch"
	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/tailoring"
	"github.com/jonathan/resume-engine/internal/types"
	"github.com/jonathan/resume-engine/internal/validation"
	"github.com/jonathan/resume-engine/internal/versions"
)

// DocumentCompiler turns LaTeX source into PDF bytes.
type DocumentCompiler interface {
	Compile(ctx context.Context, document string, outputName string) ([]byte, error)
}

// ProfileReader supplies the profile a version's validation can fall back to.
// May be nil when profiles are not stored.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*types.Profile, error)
}

// Service orchestrates the engine's operations over a version manager, a
// compiler and an optional summarizer.
type Service struct {
	Versions   *versions.Manager
	Compiler   DocumentCompiler
	Summarizer *tailoring.Summarizer
	Profiles   ProfileReader
}

// NewService wires the engine service. Summarizer and profiles may be nil;
// tailoring then degrades to deterministic scoring only.
func NewService(manager *versions.Manager, compiler DocumentCompiler, summarizer *tailoring.Summarizer, profiles ProfileReader) *Service {
	return &Service{
		Versions:   manager,
		Compiler:   compiler,
		Summarizer: summarizer,
		Profiles:   profiles,
	}
}

func (s *Service) profileFor(ctx context.Context, ownerID uuid.UUID) *types.Profile {
	if s.Profiles == nil {
		return nil
	}
	profile, err := s.Profiles.GetProfile(ctx, ownerID.String())
	if err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID.String()).Msg("profile lookup failed, validating without it")
		return nil
	}
	return profile
}

// Validate reports section completeness for a version without side effects.
func (s *Service) Validate(ctx context.Context, ownerID, versionID uuid.UUID) (*validation.Result, error) {
	version, err := s.Versions.Get(ctx, ownerID, versionID)
	if err != nil {
		return nil, err
	}
	result := validation.Validate(version, s.profileFor(ctx, ownerID))
	return &result, nil
}

// Render assembles the version's LaTeX source without compiling it.
func (s *Service) Render(ctx context.Context, ownerID, versionID uuid.UUID) (string, error) {
	version, err := s.Versions.Get(ctx, ownerID, versionID)
	if err != nil {
		return "", err
	}
	return rendering.AssembleDocument(version), nil
}

// Generate validates, assembles and compiles a version, persisting updated
// metadata only after the compile succeeds. Incomplete versions are rejected
// with a validation.IncompleteError before any work is done.
func (s *Service) Generate(ctx context.Context, ownerID, versionID uuid.UUID) ([]byte, error) {
	version, err := s.Versions.Get(ctx, ownerID, versionID)
	if err != nil {
		return nil, err
	}

	result := validation.Validate(version, s.profileFor(ctx, ownerID))
	if !result.IsComplete {
		return nil, &validation.IncompleteError{Missing: result.MissingSections}
	}

	document := rendering.AssembleDocument(version)
	pdf, err := s.Compiler.Compile(ctx, document, SafeFileName(version.DraftName))
	if err != nil {
		return nil, err
	}

	version.UpdatedAt = time.Now().UTC()
	if _, err := s.Versions.Update(ctx, ownerID, version); err != nil {
		log.Warn().Err(err).Str("version_id", versionID.String()).Msg("failed to record generation timestamp")
	}

	log.Info().
		Str("owner_id", ownerID.String()).
		Str("version_id", versionID.String()).
		Int("pdf_bytes", len(pdf)).
		Msg("generated resume PDF")
	return pdf, nil
}

// ExportFormat selects the artifact Export produces.
type ExportFormat string

// Export formats.
const (
	FormatPDF ExportFormat = "pdf"
	FormatTeX ExportFormat = "tex"
)

// Export regenerates the requested artifact on demand. Artifacts are never
// cached; the returned filename is derived from the draft name.
func (s *Service) Export(ctx context.Context, ownerID, versionID uuid.UUID, format ExportFormat) ([]byte, string, error) {
	version, err := s.Versions.Get(ctx, ownerID, versionID)
	if err != nil {
		return nil, "", err
	}

	base := SafeFileName(version.DraftName)
	switch format {
	case FormatTeX:
		return []byte(rendering.AssembleDocument(version)), base + ".tex", nil
	default:
		pdf, err := s.Generate(ctx, ownerID, versionID)
		if err != nil {
			return nil, "", err
		}
		return pdf, base + ".pdf", nil
	}
}

// CreateDraft clones a version (the base by default) into a new named draft.
func (s *Service) CreateDraft(ctx context.Context, ownerID uuid.UUID, draftName string, sourceID *uuid.UUID) (*types.ResumeVersion, error) {
	return s.Versions.CreateDraft(ctx, ownerID, draftName, "", sourceID)
}

// TailorRequest describes a tailoring run. Exactly one of JobDescription or
// JobURL should be set; when both are present the inline text wins.
type TailorRequest struct {
	DraftName      string
	JobDescription string
	JobURL         string
	SourceID       *uuid.UUID
}

// TailorResult carries the created version and its deterministic match data.
type TailorResult struct {
	Version         *types.ResumeVersion
	Match           tailoring.MatchResult
	TailoredSummary string
	Suggestions     []string
}

// Tailor scores the owner's skills against a job description, creates a
// tailored draft carrying the score, and asks the model for a rewritten
// summary. Model failures degrade to the deterministic result.
func (s *Service) Tailor(ctx context.Context, ownerID uuid.UUID, req TailorRequest) (*TailorResult, error) {
	jobText := strings.TrimSpace(req.JobDescription)
	if jobText == "" && req.JobURL != "" {
		fetched, err := fetch.JobDescription(ctx, req.JobURL, nil)
		if err != nil {
			return nil, err
		}
		jobText = fetched
	}

	source, err := s.sourceVersion(ctx, ownerID, req.SourceID)
	if err != nil {
		return nil, err
	}

	inventory := source.SkillInventory()
	match := tailoring.Match(jobText, inventory)

	draftName := req.DraftName
	if draftName == "" {
		draftName = "Tailored draft"
	}
	version, err := s.Versions.CreateDraft(ctx, ownerID, draftName, jobText, req.SourceID)
	if err != nil {
		return nil, err
	}

	score := match.Score
	version.MatchScore = &score

	result := &TailorResult{Version: version, Match: match}
	if s.Summarizer != nil {
		var goalRole string
		if profile := s.profileFor(ctx, ownerID); profile != nil {
			goalRole = profile.GoalRole
		}
		suggestions := s.Summarizer.Tailor(ctx, tailoring.SummaryRequest{
			CurrentSummary: source.Summary,
			GoalRole:       goalRole,
			JobDescription: jobText,
			MatchedSkills:  match.MatchedSkills,
			MissingSkills:  match.MissingSkills,
		})
		if suggestions.TailoredSummary != "" {
			version.Summary = suggestions.TailoredSummary
			result.TailoredSummary = suggestions.TailoredSummary
		}
		result.Suggestions = suggestions.Notes
	}

	if version, err = s.Versions.Update(ctx, ownerID, version); err != nil {
		return nil, err
	}
	result.Version = version

	log.Info().
		Str("owner_id", ownerID.String()).
		Str("version_id", version.ID.String()).
		Int("match_score", match.Score).
		Bool("summary_tailored", result.TailoredSummary != "").
		Msg("created tailored version")
	return result, nil
}

func (s *Service) sourceVersion(ctx context.Context, ownerID uuid.UUID, sourceID *uuid.UUID) (*types.ResumeVersion, error) {
	if sourceID != nil {
		return s.Versions.Get(ctx, ownerID, *sourceID)
	}
	return s.Versions.GetBase(ctx, ownerID)
}
