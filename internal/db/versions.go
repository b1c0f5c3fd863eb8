package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-engine/internal/types"
	"github.com/jonathan/resume-engine/internal/versions"
)

// sectionsDoc is the JSONB payload holding a version's section content.
// Lifecycle and scoring metadata live in their own columns.
type sectionsDoc struct {
	Summary         string                       `json:"summary,omitempty"`
	Contact         *types.ContactInfo           `json:"contact_info,omitempty"`
	Coursework      types.StringList             `json:"coursework_section,omitempty"`
	Education       []types.EducationEntry       `json:"education_section,omitempty"`
	Experience      []types.ExperienceEntry      `json:"experience_section,omitempty"`
	Projects        []types.ProjectEntry         `json:"projects_section,omitempty"`
	Certifications  []types.CertificationEntry   `json:"certifications_section,omitempty"`
	Extracurricular []types.ExtracurricularEntry `json:"extracurricular_section,omitempty"`
	TechnicalSkills *types.TechnicalSkills       `json:"technical_skills_section,omitempty"`
}

func packSections(v *types.ResumeVersion) ([]byte, error) {
	doc := sectionsDoc{
		Summary:         v.Summary,
		Contact:         v.Contact,
		Coursework:      v.Coursework,
		Education:       v.Education,
		Experience:      v.Experience,
		Projects:        v.Projects,
		Certifications:  v.Certifications,
		Extracurricular: v.Extracurricular,
		TechnicalSkills: v.TechnicalSkills,
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sections: %w", err)
	}
	return payload, nil
}

func unpackSections(payload []byte, v *types.ResumeVersion) error {
	var doc sectionsDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal sections: %w", err)
	}
	v.Summary = doc.Summary
	v.Contact = doc.Contact
	v.Coursework = doc.Coursework
	v.Education = doc.Education
	v.Experience = doc.Experience
	v.Projects = doc.Projects
	v.Certifications = doc.Certifications
	v.Extracurricular = doc.Extracurricular
	v.TechnicalSkills = doc.TechnicalSkills
	return nil
}

// VersionStore is the PostgreSQL-backed versions.Store implementation.
type VersionStore struct {
	db *DB
}

// NewVersionStore returns a VersionStore over the connection pool.
func NewVersionStore(db *DB) *VersionStore {
	return &VersionStore{db: db}
}

var _ versions.Store = (*VersionStore)(nil)

// Create inserts a new resume version.
func (s *VersionStore) Create(ctx context.Context, version *types.ResumeVersion) error {
	sections, err := packSections(version)
	if err != nil {
		return err
	}
	_, err = s.db.pool.Exec(ctx,
		`INSERT INTO resume_versions
		   (id, owner_id, version_number, draft_name, is_base_version, is_active,
		    parent_version_id, job_description, match_score, sections, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		version.ID, version.OwnerID, version.VersionNumber, version.DraftName,
		version.IsBaseVersion, version.IsActive, version.ParentVersionID,
		version.JobDescription, version.MatchScore, sections,
		version.CreatedAt, version.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert version: %w", err)
	}
	return nil
}

const versionColumns = `id, owner_id, version_number, draft_name, is_base_version, is_active,
	parent_version_id, job_description, match_score, sections, created_at, updated_at`

func scanVersion(row pgx.Row) (*types.ResumeVersion, error) {
	var version types.ResumeVersion
	var sections []byte
	err := row.Scan(
		&version.ID, &version.OwnerID, &version.VersionNumber, &version.DraftName,
		&version.IsBaseVersion, &version.IsActive, &version.ParentVersionID,
		&version.JobDescription, &version.MatchScore, &sections,
		&version.CreatedAt, &version.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unpackSections(sections, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// Get retrieves a version by ID, returning (nil, nil) when absent.
func (s *VersionStore) Get(ctx context.Context, id uuid.UUID) (*types.ResumeVersion, error) {
	row := s.db.pool.QueryRow(ctx,
		`SELECT `+versionColumns+` FROM resume_versions WHERE id = $1`, id)
	version, err := scanVersion(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// ListByOwner returns the owner's versions ordered by version number descending.
func (s *VersionStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*types.ResumeVersion, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT `+versionColumns+` FROM resume_versions
		 WHERE owner_id = $1 ORDER BY version_number DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	var result []*types.ResumeVersion
	for rows.Next() {
		version, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		result = append(result, version)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate versions: %w", err)
	}
	return result, nil
}

// Update replaces a version's mutable fields.
func (s *VersionStore) Update(ctx context.Context, version *types.ResumeVersion) error {
	sections, err := packSections(version)
	if err != nil {
		return err
	}
	tag, err := s.db.pool.Exec(ctx,
		`UPDATE resume_versions
		 SET draft_name = $2, job_description = $3, match_score = $4,
		     sections = $5, updated_at = $6
		 WHERE id = $1`,
		version.ID, version.DraftName, version.JobDescription, version.MatchScore,
		sections, version.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update version: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &versions.NotFoundError{VersionID: version.ID}
	}
	return nil
}

// Delete removes a version.
func (s *VersionStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.pool.Exec(ctx, `DELETE FROM resume_versions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete version: %w", err)
	}
	return nil
}

// SetActive deactivates every version of the owner and activates the target
// in a single transaction, so readers never observe zero or two active
// versions.
func (s *VersionStore) SetActive(ctx context.Context, ownerID, versionID uuid.UUID) error {
	tx, err := s.db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx,
		`UPDATE resume_versions SET is_active = FALSE WHERE owner_id = $1 AND is_active`, ownerID); err != nil {
		return fmt.Errorf("failed to deactivate versions: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE resume_versions SET is_active = TRUE, updated_at = NOW()
		 WHERE id = $1 AND owner_id = $2`, versionID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to activate version: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &versions.NotFoundError{VersionID: versionID}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}
	return nil
}
