package resolver

import (
	"fmt"

	"github.com/dshills/promptdeck/internal/registry"
)

// Criteria describes which modules a caller wants in a plan.
type Criteria struct {
	// ExplicitIDs are modules requested by id. Unknown ids are an error.
	ExplicitIDs []string `json:"explicitIds,omitempty"`
	// GoalTags seed every module whose tag set intersects them.
	GoalTags []string `json:"goalTags,omitempty"`
	// TokenBudget caps the plan's total token estimate. Zero means no cap.
	TokenBudget int `json:"tokenBudget,omitempty"`
	// MaxModules caps the number of modules in the plan. Zero means no cap.
	MaxModules int `json:"maxModules,omitempty"`
}

// Drop records a module removed from a plan and why.
type Drop struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Plan is a resolved, ordered, budget-fitting module selection. For every
// module in Modules, all of its dependencies appear strictly earlier.
type Plan struct {
	Modules     []registry.Module `json:"modules"`
	TotalTokens int               `json:"totalTokens"`
	Dropped     []Drop            `json:"dropped,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
}

// IDs returns the ordered module ids of the plan.
func (p *Plan) IDs() []string {
	ids := make([]string, len(p.Modules))
	for i, m := range p.Modules {
		ids[i] = m.ID
	}
	return ids
}

// BudgetInfeasibleError is returned when the modules that cannot be dropped
// (core modules and dependencies of retained modules) alone exceed the token
// budget. MinimumFeasible is the smallest budget that would have succeeded.
type BudgetInfeasibleError struct {
	Budget          int
	MinimumFeasible int
}

func (e *BudgetInfeasibleError) Error() string {
	return fmt.Sprintf("token budget %d infeasible: required modules need at least %d tokens",
		e.Budget, e.MinimumFeasible)
}
