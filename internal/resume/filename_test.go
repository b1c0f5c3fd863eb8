package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Base Resume", "Base_Resume"},
		{"special characters stripped", "Acme (Backend) v2!", "Acme_Backend_v2"},
		{"hyphen and underscore kept", "draft_v1-final", "draft_v1-final"},
		{"empty falls back", "", "resume"},
		{"only special characters falls back", "///***", "resume"},
		{"surrounding spaces trimmed", "  My Draft  ", "My_Draft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeFileName(tt.input))
		})
	}
}
