package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVersionPayload_Valid(t *testing.T) {
	payload := `{
		"draft_name": "Base Resume",
		"summary": "Backend developer.",
		"contact_info": {"name": "Ada Lovelace", "email": "ada@example.com"},
		"education_section": [{"institution": "State University", "degree": "BSc"}],
		"projects_section": [{"title": "Compiler", "technologies": "Go, LLVM"}],
		"technical_skills_section": {"languages": ["Go", "Python"]}
	}`

	assert.NoError(t, ValidateVersionPayload([]byte(payload)))
}

func TestValidateVersionPayload_TechnologiesAcceptsString(t *testing.T) {
	payload := `{"projects_section": [{"title": "App", "technologies": "React, Node"}]}`

	assert.NoError(t, ValidateVersionPayload([]byte(payload)))
}

func TestValidateVersionPayload_MissingRequiredField(t *testing.T) {
	payload := `{"education_section": [{"degree": "BSc"}]}`

	err := ValidateVersionPayload([]byte(payload))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "institution")
}

func TestValidateVersionPayload_UnknownField(t *testing.T) {
	payload := `{"unknown_section": []}`

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateVersionPayload([]byte(payload)), &validationErr)
}

func TestValidateVersionPayload_WrongType(t *testing.T) {
	payload := `{"summary": 42}`

	var validationErr *ValidationError
	err := ValidateVersionPayload([]byte(payload))
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "summary", validationErr.Errors[0].Field)
}

func TestValidateVersionPayload_MalformedJSON(t *testing.T) {
	err := ValidateVersionPayload([]byte("{not json"))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
