// Package types defines the shared data structures for the resume engine.
package types

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringList is a list of strings that also accepts a single comma-delimited
// string in JSON input. Both forms normalize to a trimmed slice.
type StringList []string

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-delimited string.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = normalizeList(arr)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = SplitList(single)
	return nil
}

// SplitList splits a comma-delimited string into trimmed, non-empty entries.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	return normalizeList(parts)
}

func normalizeList(parts []string) []string {
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// ContactInfo holds the resume header contact details.
type ContactInfo struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	LinkedInURL  string `json:"linkedin_url,omitempty"`
	GitHubURL    string `json:"github_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

// IsEmpty reports whether no contact field is set.
func (c *ContactInfo) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Name == "" && c.Email == "" && c.Phone == "" && c.Location == "" &&
		c.LinkedInURL == "" && c.GitHubURL == "" && c.PortfolioURL == ""
}

// EducationEntry is a single education record.
type EducationEntry struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	Location     string `json:"location,omitempty"`
	StartYear    string `json:"start_year,omitempty"`
	EndYear      string `json:"end_year,omitempty"`
	CGPA         string `json:"cgpa,omitempty"`
}

// ExperienceEntry is a single work experience or internship record.
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Role         string   `json:"role,omitempty"`
	Location     string   `json:"location,omitempty"`
	CompanyURL   string   `json:"company_url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	BulletPoints []string `json:"bullet_points,omitempty"`
}

// ProjectEntry is a single project record.
type ProjectEntry struct {
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Technologies StringList `json:"technologies,omitempty"`
	GitHubURL    string     `json:"github_url,omitempty"`
	DemoURL      string     `json:"demo_url,omitempty"`
	StartDate    string     `json:"start_date,omitempty"`
	EndDate      string     `json:"end_date,omitempty"`
	Highlights   []string   `json:"highlights,omitempty"`
}

// CertificationEntry is a single certification record.
type CertificationEntry struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer,omitempty"`
	DateObtained  string `json:"date_obtained,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}

// ExtracurricularEntry is a single extracurricular activity record.
type ExtracurricularEntry struct {
	Organization string   `json:"organization"`
	Role         string   `json:"role,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// TechnicalSkills groups skills by a fixed category set. Categories render
// in the order defined by TechnicalSkillCategories.
type TechnicalSkills struct {
	Languages          StringList `json:"languages,omitempty"`
	FrameworksAndTools StringList `json:"frameworks_and_tools,omitempty"`
	Databases          StringList `json:"databases,omitempty"`
	CloudPlatforms     StringList `json:"cloud_platforms,omitempty"`
	Other              StringList `json:"other,omitempty"`
}

// IsEmpty reports whether every category is empty.
func (t *TechnicalSkills) IsEmpty() bool {
	if t == nil {
		return true
	}
	return len(t.Languages) == 0 && len(t.FrameworksAndTools) == 0 &&
		len(t.Databases) == 0 && len(t.CloudPlatforms) == 0 && len(t.Other) == 0
}

// All returns every skill across categories in category order.
func (t *TechnicalSkills) All() []string {
	if t == nil {
		return nil
	}
	var all []string
	all = append(all, t.Languages...)
	all = append(all, t.FrameworksAndTools...)
	all = append(all, t.Databases...)
	all = append(all, t.CloudPlatforms...)
	all = append(all, t.Other...)
	return all
}

// ResumeVersion is one named version of a user's resume. A user has exactly
// one base version and zero or more drafts tailored to job descriptions.
type ResumeVersion struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	VersionNumber   int        `json:"version_number"`
	DraftName       string     `json:"draft_name,omitempty"`
	IsBaseVersion   bool       `json:"is_base_version"`
	IsActive        bool       `json:"is_active"`
	ParentVersionID *uuid.UUID `json:"parent_version_id,omitempty"`
	JobDescription  string     `json:"job_description,omitempty"`
	MatchScore      *int       `json:"match_score,omitempty"`

	Summary         string                 `json:"summary,omitempty"`
	Contact         *ContactInfo           `json:"contact_info,omitempty"`
	Coursework      StringList             `json:"coursework_section,omitempty"`
	Education       []EducationEntry       `json:"education_section,omitempty"`
	Experience      []ExperienceEntry      `json:"experience_section,omitempty"`
	Projects        []ProjectEntry         `json:"projects_section,omitempty"`
	Certifications  []CertificationEntry   `json:"certifications_section,omitempty"`
	Extracurricular []ExtracurricularEntry `json:"extracurricular_section,omitempty"`
	TechnicalSkills *TechnicalSkills       `json:"technical_skills_section,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the version's section content (not its
// identity or lifecycle fields). Used when deriving drafts.
func (v *ResumeVersion) Clone() *ResumeVersion {
	clone := &ResumeVersion{
		OwnerID: v.OwnerID,
		Summary: v.Summary,
	}
	if v.Contact != nil {
		contact := *v.Contact
		clone.Contact = &contact
	}
	clone.Coursework = append(StringList(nil), v.Coursework...)
	clone.Education = append([]EducationEntry(nil), v.Education...)
	clone.Experience = cloneExperience(v.Experience)
	clone.Projects = cloneProjects(v.Projects)
	clone.Certifications = append([]CertificationEntry(nil), v.Certifications...)
	clone.Extracurricular = cloneExtracurricular(v.Extracurricular)
	if v.TechnicalSkills != nil {
		clone.TechnicalSkills = &TechnicalSkills{
			Languages:          append(StringList(nil), v.TechnicalSkills.Languages...),
			FrameworksAndTools: append(StringList(nil), v.TechnicalSkills.FrameworksAndTools...),
			Databases:          append(StringList(nil), v.TechnicalSkills.Databases...),
			CloudPlatforms:     append(StringList(nil), v.TechnicalSkills.CloudPlatforms...),
			Other:              append(StringList(nil), v.TechnicalSkills.Other...),
		}
	}
	return clone
}

func cloneExperience(entries []ExperienceEntry) []ExperienceEntry {
	out := append([]ExperienceEntry(nil), entries...)
	for i := range out {
		out[i].BulletPoints = append([]string(nil), entries[i].BulletPoints...)
	}
	return out
}

func cloneProjects(entries []ProjectEntry) []ProjectEntry {
	out := append([]ProjectEntry(nil), entries...)
	for i := range out {
		out[i].Technologies = append(StringList(nil), entries[i].Technologies...)
		out[i].Highlights = append([]string(nil), entries[i].Highlights...)
	}
	return out
}

func cloneExtracurricular(entries []ExtracurricularEntry) []ExtracurricularEntry {
	out := append([]ExtracurricularEntry(nil), entries...)
	for i := range out {
		out[i].Achievements = append([]string(nil), entries[i].Achievements...)
	}
	return out
}

// SkillInventory returns the user's recorded skills as lower-cased tokens,
// deduplicated, drawing from the technical skills section.
func (v *ResumeVersion) SkillInventory() []string {
	seen := make(map[string]bool)
	var inventory []string
	for _, skill := range v.TechnicalSkills.All() {
		token := strings.ToLower(strings.TrimSpace(skill))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		inventory = append(inventory, token)
	}
	return inventory
}
