package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/promptdeck/internal/resolver"
	"github.com/dshills/promptdeck/internal/session"
)

var (
	styleHeader  = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Faint(true)
	styleP0      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleP1      = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	styleP2      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleP3      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func severityStyle(sev session.Severity) lipgloss.Style {
	switch sev {
	case session.SeverityP0:
		return styleP0
	case session.SeverityP1:
		return styleP1
	case session.SeverityP2:
		return styleP2
	default:
		return styleP3
	}
}

func riskStyle(risk session.RiskLevel) lipgloss.Style {
	switch risk {
	case session.RiskCritical:
		return styleP0
	case session.RiskHigh:
		return styleP1
	case session.RiskMedium:
		return styleP2
	default:
		return styleP3
	}
}

// textPlanWriter outputs a human-readable execution plan.
type textPlanWriter struct{}

func (t *textPlanWriter) Write(w io.Writer, plan *resolver.Plan) error {
	ew := &errWriter{w: w}

	ew.println(styleHeader.Render(fmt.Sprintf("Execution Plan — %d modules, %d tokens",
		len(plan.Modules), plan.TotalTokens)))
	ew.println(strings.Repeat("─", 60))

	for i, m := range plan.Modules {
		ew.printf("%2d. %-30s %-12s %6d tokens\n", i+1, m.ID, m.Category, m.TokenEstimate)
		if m.Summary != "" {
			ew.printf("    %s\n", styleDim.Render(m.Summary))
		}
	}

	if len(plan.Dropped) > 0 {
		ew.println("")
		ew.println(styleHeader.Render("Dropped"))
		for _, d := range plan.Dropped {
			ew.printf("  - %s: %s\n", d.ID, d.Reason)
		}
	}
	for _, warn := range plan.Warnings {
		ew.printf("%s %s\n", styleWarning.Render("warning:"), warn)
	}

	return ew.err
}

// textReportWriter outputs a human-readable score report.
type textReportWriter struct{}

func (t *textReportWriter) Write(w io.Writer, rep *session.Report) error {
	ew := &errWriter{w: w}

	ew.println(styleHeader.Render("Review Score Report"))
	ew.println(strings.Repeat("─", 60))
	ew.printf("Session: %s\n", rep.SessionID)
	ew.printf("Findings: %d total\n\n", rep.TotalFindings)

	for _, sev := range session.Severities {
		label := severityStyle(sev).Render(string(sev))
		ew.printf("  %s  %3d  %s\n", label, rep.Counts[sev], styleDim.Render(severityHint(sev)))
	}

	if rep.ChecklistPercentage != nil {
		ew.printf("\nChecklist: %.1f%% passing\n", *rep.ChecklistPercentage)
	}

	ew.printf("\nRisk level: %s\n", riskStyle(rep.Risk).Render(string(rep.Risk)))

	return ew.err
}

func severityHint(sev session.Severity) string {
	switch sev {
	case session.SeverityP0:
		return "fix now"
	case session.SeverityP1:
		return "fix this week"
	case session.SeverityP2:
		return "fix in 30 days"
	default:
		return "backlog"
	}
}
