package session

import "fmt"

// Severity is the priority ranking of a finding, from P0 (fix immediately)
// to P3 (backlog).
type Severity string

const (
	SeverityP0 Severity = "P0"
	SeverityP1 Severity = "P1"
	SeverityP2 Severity = "P2"
	SeverityP3 Severity = "P3"
)

// Severities lists all severities from most to least severe.
var Severities = []Severity{SeverityP0, SeverityP1, SeverityP2, SeverityP3}

// Rank returns a numeric rank for sorting (higher = more severe).
func (s Severity) Rank() int {
	switch s {
	case SeverityP0:
		return 4
	case SeverityP1:
		return 3
	case SeverityP2:
		return 2
	case SeverityP3:
		return 1
	default:
		return 0
	}
}

// Valid reports whether s is one of P0 through P3.
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// RiskLevel classifies a whole session by its worst finding.
type RiskLevel string

const (
	RiskCritical RiskLevel = "Critical"
	RiskHigh     RiskLevel = "High"
	RiskMedium   RiskLevel = "Medium"
	RiskLow      RiskLevel = "Low"
)

// Location is an optional file/line reference for a finding.
type Location struct {
	Path string `json:"path" yaml:"path"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`
}

func (l Location) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.Path, l.Line)
	}
	return l.Path
}

// Finding is a single review observation recorded against a module.
type Finding struct {
	ModuleID    string    `json:"moduleId" yaml:"module"`
	Severity    Severity  `json:"severity" yaml:"severity"`
	Category    string    `json:"category,omitempty" yaml:"category,omitempty"`
	Description string    `json:"description" yaml:"description"`
	Location    *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// Status is the lifecycle state of a session.
type Status string

const (
	StatusCreated    Status = "Created"
	StatusInProgress Status = "InProgress"
	StatusFinalized  Status = "Finalized"
)

// SessionClosedError is returned when a finalized session is written to or
// finalized again.
type SessionClosedError struct {
	ID string
}

func (e *SessionClosedError) Error() string {
	return fmt.Sprintf("session %s is finalized", e.ID)
}
