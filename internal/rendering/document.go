package rendering

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// documentPreamble is the fixed document header. It defines the one-page
// layout and the resume item commands the section renderers emit.
const documentPreamble = `\documentclass[letterpaper,11pt]{article}

\usepackage{latexsym}
\usepackage[empty]{fullpage}
\usepackage{titlesec}
\usepackage{marvosym}
\usepackage[usenames,dvipsnames]{color}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage[english]{babel}
\usepackage{tabularx}
\usepackage{fontawesome5}
\input{glyphtounicode}

% Margins
\addtolength{\oddsidemargin}{-0.6in}
\addtolength{\evensidemargin}{-0.5in}
\addtolength{\textwidth}{1.19in}
\addtolength{\topmargin}{-.7in}
\addtolength{\textheight}{1.4in}

\urlstyle{same}
\raggedbottom
\raggedright
\setlength{\tabcolsep}{0in}

% Section formatting
\titleformat{\section}{
  \vspace{-4pt}\scshape\raggedright\large\bfseries
}{}{0em}{}[\color{black}\titlerule \vspace{-5pt}]

\pdfgentounicode=1

% Custom commands
\newcommand{\resumeItem}[1]{
  \item\small{
    {#1 \vspace{-2pt}}
  }
}

\newcommand{\resumeSubheading}[4]{
  \vspace{-2pt}\item
    \begin{tabular*}{1.0\textwidth}[t]{l@{\extracolsep{\fill}}r}
      \textbf{#1} & \textbf{\small #2} \\
      \textit{\small#3} & \textit{\small #4} \\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeProjectHeading}[2]{
    \item
    \begin{tabular*}{1.0\textwidth}{l@{\extracolsep{\fill}}r}
      \small#1 & \textbf{\small #2} \\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeSubHeadingListStart}{\begin{itemize}[leftmargin=0.0in, label={}]}
\newcommand{\resumeSubHeadingListEnd}{\end{itemize}}
\newcommand{\resumeItemListStart}{\begin{itemize}}
\newcommand{\resumeItemListEnd}{\end{itemize}\vspace{-5pt}}

\begin{document}

`

// documentClosing terminates the document.
const documentClosing = `\end{document}`

// AssembleDocument composes the complete LaTeX source for a resume version.
//
// The section order is fixed for consistency across versions: Summary,
// Education, Skills/Coursework, Projects, Experience, Technical Skills,
// Certifications, Extracurricular. Technical Skills is skipped when it was
// already folded into the Skills/Coursework section. Sections with no data
// are entirely absent from the output.
func AssembleDocument(version *types.ResumeVersion) string {
	var b strings.Builder
	b.WriteString(documentPreamble)
	b.WriteString(RenderContactHeader(version.Contact))
	b.WriteString(RenderSummary(version.Summary))
	b.WriteString(RenderEducation(version.Education))

	if len(version.Coursework) > 0 {
		b.WriteString(RenderSkillsCoursework(version.Coursework, version.TechnicalSkills))
	}
	b.WriteString(RenderProjects(version.Projects))
	b.WriteString(RenderExperience(version.Experience))
	if len(version.Coursework) == 0 {
		b.WriteString(RenderTechnicalSkills(version.TechnicalSkills))
	}
	b.WriteString(RenderCertifications(version.Certifications))
	b.WriteString(RenderExtracurricular(version.Extracurricular))
	b.WriteString(documentClosing)
	return b.String()
}
