// Package tailoring scores a resume against a job description and rewrites
// targeted sections for it. Scoring is deterministic and works without an
// LLM; only the rewriting step calls one.
package tailoring

import (
	"math"
	"strings"
)

// techLexicon lists skill tokens recognized in job descriptions. Extraction
// matches against this set plus the candidate's own skill inventory, so a
// posting full of prose only contributes actual skill terms to the score.
var techLexicon = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"go": true, "golang": true, "rust": true, "ruby": true, "php": true,
	"swift": true, "kotlin": true, "scala": true, "c": true, "c++": true,
	"c#": true, "r": true, "matlab": true, "sql": true, "nosql": true,
	"html": true, "css": true, "bash": true, "perl": true,
	"react": true, "angular": true, "vue": true, "svelte": true,
	"node": true, "nodejs": true, "django": true, "flask": true,
	"fastapi": true, "rails": true, "spring": true, "laravel": true,
	"express": true, "nextjs": true, "graphql": true, "rest": true,
	"grpc": true, "kafka": true, "rabbitmq": true, "redis": true,
	"postgresql": true, "postgres": true, "mysql": true, "sqlite": true,
	"mongodb": true, "cassandra": true, "elasticsearch": true,
	"dynamodb": true, "oracle": true, "snowflake": true,
	"aws": true, "azure": true, "gcp": true, "docker": true,
	"kubernetes": true, "terraform": true, "ansible": true,
	"jenkins": true, "git": true, "linux": true, "unix": true,
	"ci/cd": true, "devops": true, "serverless": true, "lambda": true,
	"pandas": true, "numpy": true, "tensorflow": true, "pytorch": true,
	"spark": true, "hadoop": true, "airflow": true, "tableau": true,
	"excel": true, "jira": true, "figma": true, "selenium": true,
}

// MatchResult is a deterministic keyword match between a job description and
// a candidate's skill inventory.
type MatchResult struct {
	Score         int      `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#' || r == '/' || r == '.':
			// keep c++, c#, ci/cd and dotted tool names in one token
			return false
		}
		return true
	})
}

// ExtractJobSkills returns the distinct skill terms mentioned in a job
// description, in order of first appearance. A term counts as a skill when
// it appears in the built-in lexicon or in the candidate's inventory.
func ExtractJobSkills(jobDescription string, inventory []string) []string {
	known := make(map[string]bool, len(inventory))
	for _, skill := range inventory {
		known[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	seen := make(map[string]bool)
	var skills []string
	for _, token := range tokenize(jobDescription) {
		token = strings.Trim(token, "./")
		if token == "" || seen[token] {
			continue
		}
		if techLexicon[token] || known[token] {
			seen[token] = true
			skills = append(skills, token)
		}
	}
	return skills
}

// Score computes the keyword overlap between the job's skill set and the
// candidate's inventory: the percentage of job skills the candidate has,
// rounded to the nearest integer. An empty job skill set scores zero.
func Score(jobSkills, inventory []string) MatchResult {
	have := make(map[string]bool, len(inventory))
	for _, skill := range inventory {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}

	result := MatchResult{}
	seen := make(map[string]bool)
	total := 0
	for _, skill := range jobSkills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		total++
		if have[skill] {
			result.MatchedSkills = append(result.MatchedSkills, skill)
		} else {
			result.MissingSkills = append(result.MissingSkills, skill)
		}
	}

	if total == 0 {
		return result
	}
	result.Score = int(math.Round(100 * float64(len(result.MatchedSkills)) / float64(total)))
	if result.Score > 100 {
		result.Score = 100
	}
	return result
}

// Match extracts the job's skills and scores them against the inventory.
func Match(jobDescription string, inventory []string) MatchResult {
	return Score(ExtractJobSkills(jobDescription, inventory), inventory)
}
