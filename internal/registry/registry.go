package registry

import (
	"fmt"
	"iter"
)

// Registry holds the set of known modules and their dependency graph.
// It is mutable until Seal succeeds, immutable afterward.
type Registry struct {
	modules map[string]Module
	order   []string
	sealed  bool
}

// New returns an empty, unsealed registry.
func New() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds a module. It fails if the registry is sealed, the id is
// already taken, or the module depends on itself. Dependencies on ids not
// yet registered are allowed here and validated by Seal, so manifests need
// not be topologically ordered.
func (r *Registry) Register(m Module) error {
	if r.sealed {
		return &RegistrySealedError{}
	}
	if m.ID == "" {
		return fmt.Errorf("module id must not be empty")
	}
	if _, ok := r.modules[m.ID]; ok {
		return &DuplicateIDError{ID: m.ID}
	}
	if !ValidCategory(m.Category) {
		return fmt.Errorf("module %q: invalid category %q", m.ID, m.Category)
	}
	if m.TokenEstimate <= 0 {
		return fmt.Errorf("module %q: token estimate must be positive", m.ID)
	}
	for _, dep := range m.Dependencies {
		if dep == m.ID {
			return &InvalidDependencyError{ModuleID: m.ID, Dependency: dep}
		}
	}
	r.modules[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

// Seal validates the dependency graph and marks the registry immutable.
// Every declared dependency must exist, and the graph must be acyclic.
// A failed seal leaves the registry unsealed and unchanged.
func (r *Registry) Seal() error {
	for _, id := range r.order {
		for _, dep := range r.modules[id].Dependencies {
			if _, ok := r.modules[dep]; !ok {
				return &InvalidDependencyError{ModuleID: id, Dependency: dep}
			}
		}
	}

	// DFS with an explicit recursion stack so the cycle path can be reported.
	visited := make(map[string]bool, len(r.order))
	onStack := make(map[string]bool, len(r.order))
	var stack []string

	var visit func(id string) *CyclicDependencyError
	visit = func(id string) *CyclicDependencyError {
		visited[id] = true
		onStack[id] = true
		stack = append(stack, id)

		for _, dep := range r.modules[id].Dependencies {
			if onStack[dep] {
				return &CyclicDependencyError{Cycle: cyclePath(stack, dep)}
			}
			if !visited[dep] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		onStack[id] = false
		stack = stack[:len(stack)-1]
		return nil
	}

	for _, id := range r.order {
		if !visited[id] {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	r.sealed = true
	return nil
}

// cyclePath extracts the cycle from the recursion stack, starting at the
// first occurrence of start and repeating it at the end.
func cyclePath(stack []string, start string) []string {
	for i, id := range stack {
		if id == start {
			cycle := make([]string, 0, len(stack)-i+1)
			cycle = append(cycle, stack[i:]...)
			return append(cycle, start)
		}
	}
	return []string{start, start}
}

// Sealed reports whether Seal has completed successfully.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	return len(r.order)
}

// Get returns the module with the given id.
func (r *Registry) Get(id string) (Module, bool) {
	m, ok := r.modules[id]
	return m, ok
}

// Modules returns all modules in registration order. The returned slice is
// a copy and safe for the caller to retain.
func (r *Registry) Modules() []Module {
	out := make([]Module, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.modules[id])
	}
	return out
}

// ModulesByTag returns a lazy, restartable sequence of the modules carrying
// the given tag, in registration order.
func (r *Registry) ModulesByTag(tag string) iter.Seq[Module] {
	return func(yield func(Module) bool) {
		for _, id := range r.order {
			m := r.modules[id]
			if m.HasTag(tag) && !yield(m) {
				return
			}
		}
	}
}
