// Package validation checks structural completeness of resume data before
// document generation.
package validation

import (
	"math"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// SectionKind identifies a tracked resume section.
type SectionKind string

// Tracked section kinds.
const (
	SectionContact         SectionKind = "contact"
	SectionEducation       SectionKind = "education"
	SectionExperience      SectionKind = "experience"
	SectionProjects        SectionKind = "projects"
	SectionTechnicalSkills SectionKind = "technical_skills"
	SectionCertifications  SectionKind = "certifications"
	SectionExtracurricular SectionKind = "extracurricular"
)

// MissingSection describes one absent or empty section together with the
// prompt shown to the user to fill it in.
type MissingSection struct {
	SectionKind SectionKind `json:"section_name"`
	IsRequired  bool        `json:"is_required"`
	Prompt      string      `json:"prompt"`
	Fields      []string    `json:"fields"`
}

// Result is the outcome of a completeness check. It is derived on demand and
// never persisted.
type Result struct {
	IsComplete           bool             `json:"is_complete"`
	MissingSections      []MissingSection `json:"missing_sections"`
	CompletionPercentage int              `json:"completion_percentage"`
}

// trackedSection pairs a section's metadata with its emptiness rule.
type trackedSection struct {
	kind     SectionKind
	required bool
	prompt   string
	fields   []string
	present  func(version *types.ResumeVersion, profile *types.Profile) bool
}

var trackedSections = []trackedSection{
	{
		kind:     SectionContact,
		required: true,
		prompt:   "Provide your contact information: email, phone number, location, and professional links (LinkedIn, GitHub, Portfolio).",
		fields:   []string{"email", "phone", "location", "linkedin_url", "github_url", "portfolio_url"},
		present: func(version *types.ResumeVersion, profile *types.Profile) bool {
			if version != nil && !version.Contact.IsEmpty() {
				return true
			}
			return profile != nil && profile.Email != ""
		},
	},
	{
		kind:     SectionEducation,
		required: true,
		prompt:   "Please provide your education details including institution name, degree, field of study, CGPA/percentage, and years attended.",
		fields:   []string{"institution", "degree", "field_of_study", "start_year", "end_year", "cgpa", "location"},
		present: func(version *types.ResumeVersion, profile *types.Profile) bool {
			if version != nil && len(version.Education) > 0 {
				return true
			}
			return profile != nil && profile.CurrentEducation != ""
		},
	},
	{
		kind:     SectionExperience,
		required: false,
		prompt:   "Add your work experience or internships including company name, role, location, dates, and key achievements (bullet points).",
		fields:   []string{"company", "role", "location", "start_date", "end_date", "bullet_points", "company_url"},
		present: func(version *types.ResumeVersion, _ *types.Profile) bool {
			return version != nil && len(version.Experience) > 0
		},
	},
	{
		kind:     SectionProjects,
		required: true,
		prompt:   "Add your projects including project name, description, technologies used, dates, and key highlights/achievements (bullet points).",
		fields:   []string{"title", "description", "technologies", "start_date", "end_date", "highlights", "github_url", "demo_url"},
		present: func(version *types.ResumeVersion, _ *types.Profile) bool {
			return version != nil && len(version.Projects) > 0
		},
	},
	{
		kind:     SectionTechnicalSkills,
		required: true,
		prompt:   "List your technical skills grouped by: Languages (Python, Java, etc.), Frameworks & Tools (React, Docker, etc.), Databases, Cloud Platforms, and Other.",
		fields:   []string{"languages", "frameworks_and_tools", "databases", "cloud_platforms", "other"},
		present: func(version *types.ResumeVersion, _ *types.Profile) bool {
			return version != nil && !version.TechnicalSkills.IsEmpty()
		},
	},
	{
		kind:     SectionCertifications,
		required: false,
		prompt:   "Add your certifications including name, issuer, date obtained, and credential URL if available.",
		fields:   []string{"name", "issuer", "date_obtained", "credential_url"},
		present: func(version *types.ResumeVersion, _ *types.Profile) bool {
			return version != nil && len(version.Certifications) > 0
		},
	},
	{
		kind:     SectionExtracurricular,
		required: false,
		prompt:   "Add extracurricular activities including organization name, your role, dates, location, and key achievements.",
		fields:   []string{"organization", "role", "start_date", "end_date", "location", "achievements"},
		present: func(version *types.ResumeVersion, _ *types.Profile) bool {
			return version != nil && len(version.Extracurricular) > 0
		},
	},
}

// Validate inspects a resume version and the owner's profile and reports
// which tracked sections are missing, the completion percentage, and whether
// every required section is present. It is a pure query over its inputs.
//
// A summary consisting only of whitespace counts as empty, list sections
// count as empty with zero entries, and the technical skills section counts
// as empty when every category is empty.
func Validate(version *types.ResumeVersion, profile *types.Profile) Result {
	var missing []MissingSection
	present := 0
	for _, section := range trackedSections {
		if section.present(version, profile) {
			present++
			continue
		}
		missing = append(missing, MissingSection{
			SectionKind: section.kind,
			IsRequired:  section.required,
			Prompt:      section.prompt,
			Fields:      section.fields,
		})
	}

	isComplete := true
	for _, m := range missing {
		if m.IsRequired {
			isComplete = false
			break
		}
	}

	return Result{
		IsComplete:           isComplete,
		MissingSections:      missing,
		CompletionPercentage: int(math.Round(100 * float64(present) / float64(len(trackedSections)))),
	}
}

// HasSummary reports whether the version carries a non-whitespace summary.
// The summary is not a tracked section (it is generated, not collected) but
// callers use this to decide whether to request one from the model.
func HasSummary(version *types.ResumeVersion) bool {
	return version != nil && strings.TrimSpace(version.Summary) != ""
}
