package registry

import (
	"fmt"
	"strings"
)

// DuplicateIDError is returned by Register when a module id is already taken.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("module %q already registered", e.ID)
}

// InvalidDependencyError is returned when a module declares a dependency
// that does not exist in the registry, or depends on itself.
type InvalidDependencyError struct {
	ModuleID   string
	Dependency string
}

func (e *InvalidDependencyError) Error() string {
	if e.ModuleID == e.Dependency {
		return fmt.Sprintf("module %q depends on itself", e.ModuleID)
	}
	return fmt.Sprintf("module %q depends on unknown module %q", e.ModuleID, e.Dependency)
}

// CyclicDependencyError is returned by Seal when the dependency graph
// contains a cycle. Cycle lists the offending ids in order, with the first
// id repeated at the end.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Cycle, " -> "))
}

// RegistrySealedError is returned by Register after the registry was sealed.
type RegistrySealedError struct{}

func (e *RegistrySealedError) Error() string {
	return "registry is sealed"
}

// UnknownModuleError is returned when an operation references a module id
// that is not present in the registry.
type UnknownModuleError struct {
	ID string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %q", e.ID)
}
