package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk session format consumed by the score command: an
// ordered list of findings produced by an external review flow (human or
// LLM-driven).
type File struct {
	Findings []Finding `yaml:"findings"`
}

// LoadFile reads and validates a session findings file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	for i, finding := range f.Findings {
		if finding.ModuleID == "" {
			return nil, fmt.Errorf("session file finding %d: missing module id", i)
		}
		if !finding.Severity.Valid() {
			return nil, fmt.Errorf("session file finding %d: invalid severity %q", i, finding.Severity)
		}
	}
	return &f, nil
}
