package composer

import (
	"fmt"
	"strings"

	"github.com/dshills/promptdeck/internal/resolver"
)

// tokenTolerance is how far the measured artifact size may exceed the plan's
// declared total before a warning is recorded.
const tokenTolerance = 0.10

// sectionSeparator joins module blobs in the artifact.
const sectionSeparator = "\n\n"

// Section describes one module's contribution to a composed artifact.
type Section struct {
	ID     string `json:"id"`
	Bytes  int    `json:"bytes"`
	Tokens int    `json:"tokens"`
}

// Composition is the result of composing a plan: the concatenated artifact
// plus a manifest of what went into it.
type Composition struct {
	Artifact       string    `json:"-"`
	Sections       []Section `json:"sections"`
	MeasuredTokens int       `json:"measuredTokens"`
	DeclaredTokens int       `json:"declaredTokens"`
	Warnings       []string  `json:"warnings,omitempty"`
}

// EstimateTokens approximates the token count of text using the common
// four-characters-per-token heuristic.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// Compose concatenates module content in plan order. Content is opaque; the
// only post-processing is a size measurement against the plan's declared
// total. Oversize artifacts warn, they never fail.
func Compose(plan *resolver.Plan, loader Loader) (*Composition, error) {
	var b strings.Builder
	comp := &Composition{DeclaredTokens: plan.TotalTokens}

	for i, m := range plan.Modules {
		content, err := loader.Load(m.ID)
		if err != nil {
			return nil, fmt.Errorf("composing %s: %w", m.ID, err)
		}
		if i > 0 {
			b.WriteString(sectionSeparator)
		}
		b.WriteString(content)
		comp.Sections = append(comp.Sections, Section{
			ID:     m.ID,
			Bytes:  len(content),
			Tokens: EstimateTokens(content),
		})
	}

	comp.Artifact = b.String()
	comp.MeasuredTokens = EstimateTokens(comp.Artifact)

	if plan.TotalTokens > 0 {
		limit := float64(plan.TotalTokens) * (1 + tokenTolerance)
		if float64(comp.MeasuredTokens) > limit {
			comp.Warnings = append(comp.Warnings, fmt.Sprintf(
				"measured size %d tokens exceeds declared total %d by more than %.0f%%",
				comp.MeasuredTokens, plan.TotalTokens, tokenTolerance*100))
		}
	}

	return comp, nil
}
