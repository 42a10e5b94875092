package resolver

import (
	"fmt"

	"github.com/dshills/promptdeck/internal/registry"
)

// dropCategories is the removal scan order when a plan must shrink:
// lowest-priority categories go first. Core is absent because core modules
// are never dropped.
var dropCategories = []registry.Category{
	registry.CategoryChecklist,
	registry.CategoryTechStack,
	registry.CategorySpecialized,
}

// Resolve computes an execution plan for the given criteria against a sealed
// registry. It never returns a partial plan: on error the plan is nil.
func Resolve(reg *registry.Registry, c Criteria) (*Plan, error) {
	if !reg.Sealed() {
		return nil, fmt.Errorf("resolve: registry must be sealed")
	}

	all := reg.Modules()
	regIndex := make(map[string]int, len(all))
	for i, m := range all {
		regIndex[m.ID] = i
	}

	// Seed set: explicit ids plus tag matches, deduplicated.
	seeds := make(map[string]bool)
	for _, id := range c.ExplicitIDs {
		if _, ok := reg.Get(id); !ok {
			return nil, &registry.UnknownModuleError{ID: id}
		}
		seeds[id] = true
	}
	for _, tag := range c.GoalTags {
		for m := range reg.ModulesByTag(tag) {
			seeds[m.ID] = true
		}
	}

	// Transitive dependency closure over the seeds.
	closure := make(map[string]bool)
	var include func(id string)
	include = func(id string) {
		if closure[id] {
			return
		}
		closure[id] = true
		m, _ := reg.Get(id)
		for _, dep := range m.Dependencies {
			include(dep)
		}
	}
	for i := range all {
		if seeds[all[i].ID] {
			include(all[i].ID)
		}
	}

	ordered := topoSort(all, closure)

	retained, dropped, warnings, err := enforceLimits(ordered, c, regIndex)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Dropped: dropped, Warnings: warnings}
	for _, m := range ordered {
		if retained[m.ID] {
			plan.Modules = append(plan.Modules, m)
			plan.TotalTokens += m.TokenEstimate
		}
	}
	return plan, nil
}

// topoSort orders the closure so dependencies precede dependents. Among the
// ready modules at each step it picks the lowest (category rank, registration
// index), which makes the order total and deterministic.
func topoSort(all []registry.Module, closure map[string]bool) []registry.Module {
	members := make([]registry.Module, 0, len(closure))
	for _, m := range all {
		if closure[m.ID] {
			members = append(members, m)
		}
	}

	pending := make(map[string]int, len(members)) // id -> unplaced dependency count
	for _, m := range members {
		n := 0
		for _, dep := range m.Dependencies {
			if closure[dep] {
				n++
			}
		}
		pending[m.ID] = n
	}

	placed := make(map[string]bool, len(members))
	ordered := make([]registry.Module, 0, len(members))
	for len(ordered) < len(members) {
		best := -1
		for i, m := range members {
			if placed[m.ID] || pending[m.ID] > 0 {
				continue
			}
			if best == -1 || less(m, members[best]) {
				best = i
			}
		}
		// A sealed registry is acyclic, so a ready module always exists.
		pick := members[best]
		placed[pick.ID] = true
		ordered = append(ordered, pick)
		for _, m := range members {
			if placed[m.ID] {
				continue
			}
			for _, dep := range m.Dependencies {
				if dep == pick.ID {
					pending[m.ID]--
				}
			}
		}
	}
	return ordered
}

// less orders ready modules by category priority. The scan in topoSort
// visits candidates in registration order and keeps the first of equal rank,
// so registration order is the implicit second key.
func less(a, b registry.Module) bool {
	return registry.CategoryRank(a.Category) < registry.CategoryRank(b.Category)
}

// enforceLimits drops optional modules until the token budget and module cap
// are satisfied. A module is optional when it is not core and no retained
// module depends on it. Candidates leave lowest-priority category first and
// in reverse registration order within a category.
func enforceLimits(ordered []registry.Module, c Criteria, regIndex map[string]int) (map[string]bool, []Drop, []string, error) {
	retained := make(map[string]bool, len(ordered))
	total := 0
	for _, m := range ordered {
		retained[m.ID] = true
		total += m.TokenEstimate
	}

	byID := make(map[string]registry.Module, len(ordered))
	for _, m := range ordered {
		byID[m.ID] = m
	}

	hasRetainedDependent := func(id string) bool {
		for _, m := range ordered {
			if !retained[m.ID] {
				continue
			}
			for _, dep := range m.Dependencies {
				if dep == id {
					return true
				}
			}
		}
		return false
	}

	// Among retained modules of the given category with no retained
	// dependent, pick the latest-registered one.
	candidate := func(cat registry.Category) (registry.Module, bool) {
		best := registry.Module{}
		found := false
		for _, m := range ordered {
			if !retained[m.ID] || m.Category != cat {
				continue
			}
			if hasRetainedDependent(m.ID) {
				continue
			}
			if !found || regIndex[m.ID] > regIndex[best.ID] {
				best = m
				found = true
			}
		}
		return best, found
	}

	var dropped []Drop
	var warnings []string
	count := len(ordered)

	overBudget := func() bool { return c.TokenBudget > 0 && total > c.TokenBudget }
	overCap := func() bool { return c.MaxModules > 0 && count > c.MaxModules }

	for overBudget() || overCap() {
		var pick registry.Module
		found := false
		for _, cat := range dropCategories {
			if m, ok := candidate(cat); ok {
				pick, found = m, true
				break
			}
		}
		if !found {
			if overBudget() {
				return nil, nil, nil, &BudgetInfeasibleError{
					Budget:          c.TokenBudget,
					MinimumFeasible: total,
				}
			}
			// The cap cannot be met without removing required modules;
			// required modules are exempt, so report and stop shrinking.
			warnings = append(warnings,
				fmt.Sprintf("module cap %d not met: %d required modules remain", c.MaxModules, count))
			break
		}

		reason := "over token budget"
		if !overBudget() {
			reason = "over module cap"
		}
		retained[pick.ID] = false
		total -= pick.TokenEstimate
		count--
		dropped = append(dropped, Drop{ID: pick.ID, Reason: reason})
		warnings = append(warnings,
			fmt.Sprintf("dropped %s (%s, %d tokens): %s", pick.ID, pick.Category, pick.TokenEstimate, reason))
	}

	return retained, dropped, warnings, nil
}
