// Package versions manages the set of named resume versions for each owner
// and enforces the single-active-version invariant.
package versions

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError indicates the requested version does not exist for the owner.
type NotFoundError struct {
	VersionID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resume version not found: %s", e.VersionID)
}

// ConflictError indicates an attempt to delete a base version that tailored
// versions still reference.
type ConflictError struct {
	VersionID     uuid.UUID
	TailoredCount int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot delete base version %s: %d tailored version(s) still reference it", e.VersionID, e.TailoredCount)
}

// LastVersionError indicates an attempt to delete an owner's only version.
type LastVersionError struct {
	VersionID uuid.UUID
}

func (e *LastVersionError) Error() string {
	return fmt.Sprintf("cannot delete the only resume version: %s", e.VersionID)
}
