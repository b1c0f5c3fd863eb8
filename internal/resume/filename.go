package resume

import "strings"

// SafeFileName reduces a draft name to a filesystem-safe artifact name:
// only letters, digits, spaces, underscores and hyphens survive, spaces
// become underscores, and an empty result falls back to "resume".
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	cleaned = strings.ReplaceAll(cleaned, " ", "_")
	if cleaned == "" {
		return "resume"
	}
	return cleaned
}
