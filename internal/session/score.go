package session

import "github.com/dshills/promptdeck/internal/registry"

// Report is the derived, immutable output of a finalized session.
type Report struct {
	SessionID string           `json:"sessionId"`
	Counts    map[Severity]int `json:"countsBySeverity"`
	// ChecklistPercentage is the share of checklist items that passed,
	// present only when findings reference checklist modules with declared
	// item counts.
	ChecklistPercentage *float64  `json:"checklistPercentage,omitempty"`
	Risk                RiskLevel `json:"riskLevel"`
	TotalFindings       int       `json:"totalFindings"`
}

// score tallies findings by severity, derives the risk level from the
// highest severity present, and computes the checklist percentage over the
// distinct checklist modules referenced by the findings.
func score(sessionID string, findings []Finding, reg *registry.Registry) *Report {
	rep := &Report{
		SessionID:     sessionID,
		Counts:        make(map[Severity]int, len(Severities)),
		Risk:          RiskLow,
		TotalFindings: len(findings),
	}
	for _, sev := range Severities {
		rep.Counts[sev] = 0
	}

	checklistModules := make(map[string]bool)
	failingItems := 0

	for _, f := range findings {
		rep.Counts[f.Severity]++

		m, ok := reg.Get(f.ModuleID)
		if !ok || m.Category != registry.CategoryChecklist {
			continue
		}
		checklistModules[f.ModuleID] = true
		// P3 findings are informational and do not fail a checklist item.
		if f.Severity.Rank() >= SeverityP2.Rank() {
			failingItems++
		}
	}

	switch {
	case rep.Counts[SeverityP0] > 0:
		rep.Risk = RiskCritical
	case rep.Counts[SeverityP1] > 0:
		rep.Risk = RiskHigh
	case rep.Counts[SeverityP2] > 0:
		rep.Risk = RiskMedium
	}

	totalItems := 0
	for id := range checklistModules {
		m, _ := reg.Get(id)
		totalItems += m.Items
	}
	if totalItems > 0 {
		passing := totalItems - failingItems
		if passing < 0 {
			passing = 0
		}
		pct := float64(passing) / float64(totalItems) * 100
		rep.ChecklistPercentage = &pct
	}

	return rep
}
