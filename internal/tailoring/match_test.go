package tailoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_PartialOverlap(t *testing.T) {
	result := Score([]string{"python", "sql", "docker"}, []string{"python", "react"})

	assert.Equal(t, 33, result.Score)
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, []string{"sql", "docker"}, result.MissingSkills)
}

func TestScore_FullOverlap(t *testing.T) {
	result := Score([]string{"go", "postgres"}, []string{"go", "postgres", "redis"})

	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.MissingSkills)
}

func TestScore_NoJobSkills(t *testing.T) {
	result := Score(nil, []string{"python"})

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestScore_CaseInsensitive(t *testing.T) {
	result := Score([]string{"Python", "SQL"}, []string{"python"})

	assert.Equal(t, 50, result.Score)
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
}

func TestScore_DeduplicatesJobSkills(t *testing.T) {
	result := Score([]string{"python", "python", "sql"}, []string{"python"})

	assert.Equal(t, 50, result.Score)
}

func TestExtractJobSkills_LexiconFilter(t *testing.T) {
	desc := "We are looking for an engineer with Python and SQL experience. " +
		"Familiarity with Docker is a plus. Strong communication required."

	skills := ExtractJobSkills(desc, nil)

	assert.Equal(t, []string{"python", "sql", "docker"}, skills)
}

func TestExtractJobSkills_InventoryTerms(t *testing.T) {
	desc := "Experience with Snowplow pipelines preferred."

	assert.Empty(t, ExtractJobSkills(desc, nil))
	assert.Equal(t, []string{"snowplow"}, ExtractJobSkills(desc, []string{"Snowplow"}))
}

func TestExtractJobSkills_OrderOfAppearance(t *testing.T) {
	desc := "docker docker python sql python"

	assert.Equal(t, []string{"docker", "python", "sql"}, ExtractJobSkills(desc, nil))
}

func TestMatch_EndToEnd(t *testing.T) {
	desc := "Seeking a backend developer. Required: Python, SQL, Docker."

	result := Match(desc, []string{"python", "react"})

	assert.Equal(t, 33, result.Score)
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, []string{"sql", "docker"}, result.MissingSkills)
}
