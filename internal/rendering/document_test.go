package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-engine/internal/types"
)

func minimalVersion() *types.ResumeVersion {
	return &types.ResumeVersion{
		Contact: &types.ContactInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
		Summary: "Engineer.",
	}
}

func TestAssembleDocument_PreambleAndClosing(t *testing.T) {
	doc := AssembleDocument(minimalVersion())
	assert.True(t, strings.HasPrefix(doc, "\\documentclass[letterpaper,11pt]{article}"))
	assert.True(t, strings.HasSuffix(doc, "\\end{document}"))
	assert.Contains(t, doc, "\\begin{document}")
}

func TestAssembleDocument_ContactHeaderAlwaysPresent(t *testing.T) {
	doc := AssembleDocument(&types.ResumeVersion{})
	assert.Contains(t, doc, PlaceholderName)
}

func TestAssembleDocument_EmptySectionsAbsent(t *testing.T) {
	doc := AssembleDocument(minimalVersion())
	assert.NotContains(t, doc, "\\section{Education}")
	assert.NotContains(t, doc, "\\section{Projects}")
	assert.NotContains(t, doc, "\\section{Experience}")
	assert.NotContains(t, doc, "\\section{Technical Skills}")
	assert.NotContains(t, doc, "\\section{Certifications}")
	assert.NotContains(t, doc, "\\section{Extracurricular Activities}")
}

func TestAssembleDocument_FixedSectionOrder(t *testing.T) {
	version := minimalVersion()
	version.Education = []types.EducationEntry{{Institution: "MIT"}}
	version.Experience = []types.ExperienceEntry{{Company: "Acme"}}
	version.Projects = []types.ProjectEntry{{Title: "Engine"}}
	version.TechnicalSkills = &types.TechnicalSkills{Languages: types.StringList{"Go"}}
	version.Certifications = []types.CertificationEntry{{Name: "CKA"}}
	version.Extracurricular = []types.ExtracurricularEntry{{Organization: "Club"}}

	doc := AssembleDocument(version)
	order := []string{
		"\\section{Summary}",
		"\\section{Education}",
		"\\section{Projects}",
		"\\section{Experience}",
		"\\section{Technical Skills}",
		"\\section{Certifications}",
		"\\section{Extracurricular Activities}",
	}
	last := -1
	for _, header := range order {
		idx := strings.Index(doc, header)
		assert.True(t, idx > last, "expected %s after previous section", header)
		last = idx
	}
}

func TestAssembleDocument_CourseworkFoldsTechnicalSkills(t *testing.T) {
	version := minimalVersion()
	version.Coursework = types.StringList{"Algorithms"}
	version.TechnicalSkills = &types.TechnicalSkills{Languages: types.StringList{"Go"}}

	doc := AssembleDocument(version)
	assert.Contains(t, doc, "\\section{Skills and Coursework}")
	assert.NotContains(t, doc, "\\section{Technical Skills}")
	assert.Contains(t, doc, "\\textbf{Languages:} Go")
}

func TestAssembleDocument_SkillsCourseworkRendersBeforeProjects(t *testing.T) {
	version := minimalVersion()
	version.Coursework = types.StringList{"Algorithms"}
	version.Projects = []types.ProjectEntry{{Title: "Engine"}}

	doc := AssembleDocument(version)
	skills := strings.Index(doc, "\\section{Skills and Coursework}")
	projects := strings.Index(doc, "\\section{Projects}")
	assert.True(t, skills >= 0 && skills < projects)
}

func TestAssembleDocument_Deterministic(t *testing.T) {
	version := minimalVersion()
	version.TechnicalSkills = &types.TechnicalSkills{
		Languages: types.StringList{"Go", "Python"},
		Databases: types.StringList{"PostgreSQL"},
	}
	assert.Equal(t, AssembleDocument(version), AssembleDocument(version))
}
