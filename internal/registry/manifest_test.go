package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `
modules:
  - id: core-principles
    title: Core Review Principles
    category: core
    tokens: 1200
    tags: [always]
    summary: Baseline review guidance.
  - id: go-patterns
    title: Go Patterns
    category: tech_stack
    tokens: 800
    requires: [core-principles]
    tags: [go]
  - id: security-checklist
    title: Security Checklist
    category: checklist
    tokens: 500
    requires: [core-principles]
    tags: [security]
    items: 24
`

func TestParseManifest(t *testing.T) {
	man, err := ParseManifest([]byte(validManifest))
	require.NoError(t, err)
	require.Len(t, man.Modules, 3)

	m := man.Modules[2].Module()
	assert.Equal(t, "security-checklist", m.ID)
	assert.Equal(t, CategoryChecklist, m.Category)
	assert.Equal(t, 500, m.TokenEstimate)
	assert.Equal(t, []string{"core-principles"}, m.Dependencies)
	assert.Equal(t, 24, m.Items)
}

func TestParseManifest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{{nope"},
		{"empty", "modules: []"},
		{"missing id", "modules:\n  - category: core\n    tokens: 10\n"},
		{"missing category", "modules:\n  - id: a\n    tokens: 10\n"},
		{"bad category", "modules:\n  - id: a\n    category: huge\n    tokens: 10\n"},
		{"zero tokens", "modules:\n  - id: a\n    category: core\n"},
		{"negative items", "modules:\n  - id: a\n    category: core\n    tokens: 10\n    items: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o644))

	reg, err := LoadManifest(path, nil)
	require.NoError(t, err)
	assert.True(t, reg.Sealed())
	assert.Equal(t, 3, reg.Len())
}

func TestLoadManifest_NotFound(t *testing.T) {
	_, err := LoadManifest("/nonexistent/modules.yaml", nil)
	assert.Error(t, err)
}

func TestLoadManifest_Cycle(t *testing.T) {
	cyclic := `
modules:
  - id: a
    category: core
    tokens: 10
    requires: [b]
  - id: b
    category: core
    tokens: 10
    requires: [a]
`
	dir := t.TempDir()
	path := filepath.Join(dir, "modules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cyclic), 0o644))

	_, err := LoadManifest(path, nil)
	var cycleErr *CyclicDependencyError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"a", "b", "a"}, cycleErr.Cycle)
}
