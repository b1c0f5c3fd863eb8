package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"summary\": \"text\"}\n```"
	assert.Equal(t, `{"summary": "text"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"a": 1}`
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_Whitespace(t *testing.T) {
	input := "  \n```json\n{}\n```  \n"
	assert.Equal(t, "{}", CleanJSONBlock(input))
}

func TestConfig_GetModel_Fallback(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
	}
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierLite))
}

func TestConfig_WithModel_DoesNotMutate(t *testing.T) {
	cfg := DefaultConfig()
	override := cfg.WithModel(TierStandard, "gemini-2.5-pro")
	assert.Equal(t, "gemini-2.5-pro", override.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
}
