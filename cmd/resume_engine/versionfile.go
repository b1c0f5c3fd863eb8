package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-engine/internal/schemas"
	"github.com/jonathan/resume-engine/internal/types"
)

// loadVersionFile reads a resume payload JSON file, validates it against the
// section schema, and unmarshals it into a version.
func loadVersionFile(path string) (*types.ResumeVersion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := schemas.ValidateVersionPayload(data); err != nil {
		return nil, err
	}

	var version types.ResumeVersion
	if err := json.Unmarshal(data, &version); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &version, nil
}
