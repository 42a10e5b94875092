package output

import (
	"fmt"
	"io"

	"github.com/dshills/promptdeck/internal/resolver"
	"github.com/dshills/promptdeck/internal/session"
)

// markdownPlanWriter outputs a PR-comment-friendly plan summary.
type markdownPlanWriter struct{}

func (m *markdownPlanWriter) Write(w io.Writer, plan *resolver.Plan) error {
	fmt.Fprintf(w, "## Review Module Plan\n\n")
	fmt.Fprintf(w, "| # | Module | Category | Tokens |\n")
	fmt.Fprintf(w, "|---|--------|----------|--------|\n")
	for i, mod := range plan.Modules {
		fmt.Fprintf(w, "| %d | `%s` | %s | %d |\n", i+1, mod.ID, mod.Category, mod.TokenEstimate)
	}
	fmt.Fprintf(w, "\n**Total: %d tokens**\n", plan.TotalTokens)

	if len(plan.Dropped) > 0 {
		fmt.Fprintf(w, "\n<details>\n<summary>Dropped modules (%d)</summary>\n\n", len(plan.Dropped))
		for _, d := range plan.Dropped {
			fmt.Fprintf(w, "- `%s` — %s\n", d.ID, d.Reason)
		}
		fmt.Fprintf(w, "\n</details>\n")
	}
	return nil
}

// markdownReportWriter outputs a PR-comment-friendly score report.
type markdownReportWriter struct{}

func (m *markdownReportWriter) Write(w io.Writer, rep *session.Report) error {
	fmt.Fprintf(w, "## Review Score Report\n\n")
	fmt.Fprintf(w, "| Severity | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	for _, sev := range session.Severities {
		fmt.Fprintf(w, "| %s | %d |\n", sev, rep.Counts[sev])
	}
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", rep.TotalFindings)

	if rep.ChecklistPercentage != nil {
		fmt.Fprintf(w, "Checklist: **%.1f%%** passing\n\n", *rep.ChecklistPercentage)
	}

	icon := riskIcon(rep.Risk)
	fmt.Fprintf(w, "Risk level: %s **%s**\n", icon, rep.Risk)
	return nil
}

func riskIcon(risk session.RiskLevel) string {
	switch risk {
	case session.RiskCritical:
		return ":rotating_light:"
	case session.RiskHigh:
		return ":warning:"
	case session.RiskMedium:
		return ":large_yellow_circle:"
	default:
		return ":white_check_mark:"
	}
}
