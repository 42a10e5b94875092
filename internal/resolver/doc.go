// Package resolver turns a module selection request into a deterministic,
// dependency-correct, budget-constrained execution plan.
//
// [Resolve] is a pure function of a sealed registry and a [Criteria]:
// identical inputs always yield an identical plan. Seed modules come from
// explicit ids and goal-tag matches; their transitive dependencies are
// always included and are never dropped to satisfy a budget. Ordering is a
// topological sort with ties broken by category priority (core <
// specialized < tech_stack < checklist) and then registration order.
package resolver
