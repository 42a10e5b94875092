package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/promptdeck/internal/registry"
)

// Session owns an ordered list of findings for one review flow.
type Session struct {
	id        string
	status    Status
	findings  []Finding
	reg       *registry.Registry
	createdAt time.Time
}

// New creates an empty session bound to a sealed registry. Findings are
// validated against the registry as they are recorded.
func New(reg *registry.Registry) *Session {
	return &Session{
		id:        uuid.New().String(),
		status:    StatusCreated,
		reg:       reg,
		createdAt: time.Now(),
	}
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// Findings returns a copy of the recorded findings in record order.
func (s *Session) Findings() []Finding {
	out := make([]Finding, len(s.findings))
	copy(out, s.findings)
	return out
}

// Record appends a finding. It fails once the session is finalized, when
// the finding references a module outside the registry, or when the
// severity is not one of P0 through P3.
func (s *Session) Record(f Finding) error {
	if s.status == StatusFinalized {
		return &SessionClosedError{ID: s.id}
	}
	if !f.Severity.Valid() {
		return fmt.Errorf("invalid severity %q", f.Severity)
	}
	if _, ok := s.reg.Get(f.ModuleID); !ok {
		return &registry.UnknownModuleError{ID: f.ModuleID}
	}
	s.findings = append(s.findings, f)
	s.status = StatusInProgress
	return nil
}

// Finalize closes the session and computes its score report. A session can
// be finalized exactly once; later calls fail with SessionClosedError and
// the session stays immutable.
func (s *Session) Finalize() (*Report, error) {
	if s.status == StatusFinalized {
		return nil, &SessionClosedError{ID: s.id}
	}
	s.status = StatusFinalized
	return score(s.id, s.findings, s.reg), nil
}
