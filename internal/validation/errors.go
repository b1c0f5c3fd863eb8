package validation

import "fmt"

// IncompleteError indicates generation was requested for a resume that is
// missing required sections. It carries the missing-section list so the
// caller can prompt the user.
type IncompleteError struct {
	Missing []MissingSection
}

func (e *IncompleteError) Error() string {
	required := 0
	for _, m := range e.Missing {
		if m.IsRequired {
			required++
		}
	}
	return fmt.Sprintf("resume is incomplete: %d required section(s) missing", required)
}
