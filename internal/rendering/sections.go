package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// PlaceholderName is used in the contact header when no name is set.
const PlaceholderName = "Your Name"

// technicalSkillCategory pairs a TechnicalSkills accessor with its display
// label. The order here is the render order and is fixed.
type technicalSkillCategory struct {
	label  string
	skills func(*types.TechnicalSkills) types.StringList
}

var technicalSkillCategories = []technicalSkillCategory{
	{"Languages", func(t *types.TechnicalSkills) types.StringList { return t.Languages }},
	{"Frameworks \\& Tools", func(t *types.TechnicalSkills) types.StringList { return t.FrameworksAndTools }},
	{"Databases", func(t *types.TechnicalSkills) types.StringList { return t.Databases }},
	{"Cloud Platforms", func(t *types.TechnicalSkills) types.StringList { return t.CloudPlatforms }},
	{"Other", func(t *types.TechnicalSkills) types.StringList { return t.Other }},
}

// RenderContactHeader renders the centered contact block. The header is
// always present; a missing name falls back to PlaceholderName.
func RenderContactHeader(contact *types.ContactInfo) string {
	name := PlaceholderName
	if contact != nil && contact.Name != "" {
		name = contact.Name
	}

	var b strings.Builder
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(&b, "  {\\Huge \\scshape %s} \\\\ \\vspace{1pt}\n", EscapeLaTeX(name))

	var parts []string
	if contact != nil {
		if contact.Location != "" {
			parts = append(parts, EscapeLaTeX(contact.Location))
		}
		if contact.Phone != "" {
			parts = append(parts, fmt.Sprintf("\\href{tel:%s}{\\faPhone\\ %s}", contact.Phone, EscapeLaTeX(contact.Phone)))
		}
		if contact.Email != "" {
			parts = append(parts, fmt.Sprintf("\\href{mailto:%s}{\\faEnvelope\\ %s}", contact.Email, EscapeLaTeX(contact.Email)))
		}
		if contact.LinkedInURL != "" {
			display := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(contact.LinkedInURL,
				"https://www.linkedin.com/in/"), "https://linkedin.com/in/"), "/")
			parts = append(parts, fmt.Sprintf("\\href{%s}{\\faLinkedin\\ %s}", contact.LinkedInURL, EscapeLaTeX(display)))
		}
		if contact.GitHubURL != "" {
			display := strings.TrimSuffix(strings.TrimPrefix(contact.GitHubURL, "https://github.com/"), "/")
			parts = append(parts, fmt.Sprintf("\\href{%s}{\\faGithub\\ %s}", contact.GitHubURL, EscapeLaTeX(display)))
		}
		if contact.PortfolioURL != "" {
			parts = append(parts, fmt.Sprintf("\\href{%s}{\\faGlobe\\ Portfolio}", contact.PortfolioURL))
		}
	}
	if len(parts) > 0 {
		b.WriteString("  \\small " + strings.Join(parts, " $|$ ") + "\n")
	}
	b.WriteString("\\end{center}\n\n")
	return b.String()
}

// RenderSummary renders the summary section, or "" for whitespace-only input.
func RenderSummary(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}
	return "\\section{Summary}\n" + EscapeLaTeX(summary) + "\n\n"
}

// RenderEducation renders the education section, or "" when the list is empty.
func RenderEducation(entries []types.EducationEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\section{Education}\n")
	b.WriteString("\\resumeSubHeadingListStart\n")
	for _, edu := range entries {
		degreeLine := EscapeLaTeX(edu.Degree)
		if edu.FieldOfStudy != "" {
			if degreeLine != "" {
				degreeLine += " in "
			}
			degreeLine += EscapeLaTeX(edu.FieldOfStudy)
		}
		if edu.CGPA != "" {
			degreeLine += fmt.Sprintf(" -- CGPA: \\textbf{%s}", EscapeLaTeX(edu.CGPA))
		}
		fmt.Fprintf(&b, "  \\resumeSubheading{%s}{%s}\n", EscapeLaTeX(edu.Institution), FormatDateRange(edu.StartYear, edu.EndYear))
		fmt.Fprintf(&b, "    {%s}{%s}\n", degreeLine, EscapeLaTeX(edu.Location))
	}
	b.WriteString("\\resumeSubHeadingListEnd\n\n")
	return b.String()
}

// RenderExperience renders the experience section, or "" when the list is empty.
func RenderExperience(entries []types.ExperienceEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\section{Experience}\n")
	b.WriteString("\\resumeSubHeadingListStart\n\n")
	for _, exp := range entries {
		company := EscapeLaTeX(exp.Company)
		if links := linkMarkers(link{exp.CompanyURL, "\\faLink"}); links != "" {
			company += " " + links
		}
		b.WriteString("  \\resumeSubheading\n")
		fmt.Fprintf(&b, "    {%s}{%s}\n", company, FormatDateRange(exp.StartDate, exp.EndDate))
		fmt.Fprintf(&b, "    {%s}{%s}\n", EscapeLaTeX(exp.Role), EscapeLaTeX(exp.Location))
		writeItemList(&b, exp.BulletPoints)
		b.WriteString("\n")
	}
	b.WriteString("\\resumeSubHeadingListEnd\n\n")
	return b.String()
}

// RenderProjects renders the projects section, or "" when the list is empty.
func RenderProjects(entries []types.ProjectEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\section{Projects}\n")
	b.WriteString("\\resumeSubHeadingListStart\n\n")
	for _, project := range entries {
		heading := EscapeLaTeX(project.Title)
		if len(project.Technologies) > 0 {
			heading += fmt.Sprintf(" $|$ \\emph{%s}", EscapeLaTeX(strings.Join(project.Technologies, ", ")))
		}
		if links := linkMarkers(link{project.GitHubURL, "\\faGithub"}, link{project.DemoURL, "\\faGlobe"}); links != "" {
			heading += " " + links
		}
		fmt.Fprintf(&b, "  \\resumeProjectHeading{%s}{%s}\n", heading, FormatDateRange(project.StartDate, project.EndDate))

		items := project.Highlights
		if len(items) == 0 && project.Description != "" {
			items = []string{project.Description}
		}
		writeItemList(&b, items)
		b.WriteString("\n")
	}
	b.WriteString("\\resumeSubHeadingListEnd\n\n")
	return b.String()
}

// RenderSkillsCoursework renders the combined skills and coursework section,
// folding the technical skills categories in below the coursework list.
// Returns "" when both inputs are empty.
func RenderSkillsCoursework(coursework types.StringList, skills *types.TechnicalSkills) string {
	if len(coursework) == 0 && skills.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\section{Skills and Coursework}\n")
	b.WriteString("\\begin{itemize}[leftmargin=0.15in, label={}]\n")
	b.WriteString("  \\small{\\item{\n")

	var lines []string
	if len(coursework) > 0 {
		lines = append(lines, fmt.Sprintf("    \\textbf{Coursework:} %s", EscapeLaTeX(strings.Join(coursework, ", "))))
	}
	lines = append(lines, skillCategoryLines(skills)...)

	b.WriteString(strings.Join(lines, " \\\\\n"))
	b.WriteString("\n  }}\n")
	b.WriteString("\\end{itemize}\n\n")
	return b.String()
}

// RenderTechnicalSkills renders the standalone technical skills section,
// or "" when every category is empty.
func RenderTechnicalSkills(skills *types.TechnicalSkills) string {
	if skills.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\section{Technical Skills}\n")
	b.WriteString("\\begin{itemize}[leftmargin=0.15in, label={}]\n")
	b.WriteString("  \\small{\\item{\n")
	b.WriteString(strings.Join(skillCategoryLines(skills), " \\\\\n"))
	b.WriteString("\n  }}\n")
	b.WriteString("\\end{itemize}\n\n")
	return b.String()
}

// RenderCertifications renders the certifications section, or "" when empty.
func RenderCertifications(entries []types.CertificationEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\section{Certifications}\n")
	b.WriteString("\\resumeSubHeadingListStart\n")
	for _, cert := range entries {
		fmt.Fprintf(&b, "  \\resumeItem{\\textbf{%s} -- %s", EscapeLaTeX(cert.Name), EscapeLaTeX(cert.Issuer))
		if cert.DateObtained != "" {
			fmt.Fprintf(&b, " (%s)", EscapeLaTeX(cert.DateObtained))
		}
		if links := linkMarkers(link{cert.CredentialURL, "\\faLink"}); links != "" {
			b.WriteString(" " + links)
		}
		b.WriteString("}\n")
	}
	b.WriteString("\\resumeSubHeadingListEnd\n\n")
	return b.String()
}

// RenderExtracurricular renders the extracurricular section, or "" when empty.
func RenderExtracurricular(entries []types.ExtracurricularEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\section{Extracurricular Activities}\n")
	b.WriteString("\\resumeSubHeadingListStart\n\n")
	for _, activity := range entries {
		fmt.Fprintf(&b, "  \\resumeSubheading{%s}{%s}\n", EscapeLaTeX(activity.Organization), FormatDateRange(activity.StartDate, activity.EndDate))
		fmt.Fprintf(&b, "    {%s}{%s}\n", EscapeLaTeX(activity.Role), EscapeLaTeX(activity.Location))
		writeItemList(&b, activity.Achievements)
		b.WriteString("\n")
	}
	b.WriteString("\\resumeSubHeadingListEnd\n\n")
	return b.String()
}

type link struct {
	url  string
	icon string
}

// linkMarkers builds space-joined \href markers for the non-empty URLs.
func linkMarkers(links ...link) string {
	var markers []string
	for _, l := range links {
		if l.url == "" {
			continue
		}
		markers = append(markers, fmt.Sprintf("\\href{%s}{%s}", l.url, l.icon))
	}
	return strings.Join(markers, " ")
}

func writeItemList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("    \\resumeItemListStart\n")
	for _, item := range items {
		fmt.Fprintf(b, "      \\resumeItem{%s}\n", EscapeLaTeX(item))
	}
	b.WriteString("    \\resumeItemListEnd\n")
}

func skillCategoryLines(skills *types.TechnicalSkills) []string {
	if skills.IsEmpty() {
		return nil
	}
	var lines []string
	for _, category := range technicalSkillCategories {
		entries := category.skills(skills)
		if len(entries) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("    \\textbf{%s:} %s", category.label, EscapeLaTeX(strings.Join(entries, ", "))))
	}
	return lines
}
