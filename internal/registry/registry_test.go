package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mod(id string, cat Category, tokens int, deps ...string) Module {
	return Module{ID: id, Category: cat, TokenEstimate: tokens, Dependencies: deps}
}

func TestRegister(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(mod("a", CategoryCore, 100)))
	require.NoError(t, reg.Register(mod("b", CategorySpecialized, 200, "a")))
	assert.Equal(t, 2, reg.Len())

	m, ok := reg.Get("b")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, m.Dependencies)
}

func TestRegister_DuplicateID(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(mod("a", CategoryCore, 100)))

	err := reg.Register(mod("a", CategoryChecklist, 50))
	var dupErr *DuplicateIDError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "a", dupErr.ID)
}

func TestRegister_SelfDependency(t *testing.T) {
	reg := New()
	err := reg.Register(mod("a", CategoryCore, 100, "a"))
	var depErr *InvalidDependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "a", depErr.ModuleID)
	assert.Equal(t, "a", depErr.Dependency)
}

func TestRegister_Invalid(t *testing.T) {
	tests := []struct {
		name string
		m    Module
	}{
		{"empty id", Module{Category: CategoryCore, TokenEstimate: 10}},
		{"bad category", Module{ID: "x", Category: "bogus", TokenEstimate: 10}},
		{"zero tokens", Module{ID: "x", Category: CategoryCore}},
		{"negative tokens", Module{ID: "x", Category: CategoryCore, TokenEstimate: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, New().Register(tt.m))
		})
	}
}

func TestSeal_UnknownDependency(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(mod("a", CategoryCore, 100, "ghost")))

	err := reg.Seal()
	var depErr *InvalidDependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "a", depErr.ModuleID)
	assert.Equal(t, "ghost", depErr.Dependency)
	assert.False(t, reg.Sealed())
}

func TestSeal_Cycle(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(mod("a", CategoryCore, 100, "b")))
	require.NoError(t, reg.Register(mod("b", CategoryCore, 100, "a")))

	err := reg.Seal()
	var cycleErr *CyclicDependencyError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"a", "b", "a"}, cycleErr.Cycle)
	assert.False(t, reg.Sealed())
}

func TestSeal_LongerCycle(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(mod("a", CategoryCore, 100, "b")))
	require.NoError(t, reg.Register(mod("b", CategoryCore, 100, "c")))
	require.NoError(t, reg.Register(mod("c", CategoryCore, 100, "a")))

	err := reg.Seal()
	var cycleErr *CyclicDependencyError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycleErr.Cycle)
}

func TestSeal_Acyclic(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(mod("base", CategoryCore, 100)))
	require.NoError(t, reg.Register(mod("mid", CategorySpecialized, 100, "base")))
	require.NoError(t, reg.Register(mod("top", CategoryChecklist, 100, "mid", "base")))

	require.NoError(t, reg.Seal())
	assert.True(t, reg.Sealed())
}

func TestRegister_AfterSeal(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(mod("a", CategoryCore, 100)))
	require.NoError(t, reg.Seal())

	err := reg.Register(mod("b", CategoryCore, 100))
	var sealedErr *RegistrySealedError
	assert.True(t, errors.As(err, &sealedErr))
}

func TestSeal_ForwardReference(t *testing.T) {
	// Dependencies may be declared before their targets are registered;
	// existence is checked at seal time.
	reg := New()
	require.NoError(t, reg.Register(mod("top", CategoryChecklist, 100, "base")))
	require.NoError(t, reg.Register(mod("base", CategoryCore, 100)))
	require.NoError(t, reg.Seal())
}

func TestModules_RegistrationOrder(t *testing.T) {
	reg := New()
	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, reg.Register(mod(id, CategoryCore, 100)))
	}

	var ids []string
	for _, m := range reg.Modules() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

func TestModulesByTag(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(Module{ID: "a", Category: CategoryCore, TokenEstimate: 10, Tags: []string{"go", "security"}}))
	require.NoError(t, reg.Register(Module{ID: "b", Category: CategoryCore, TokenEstimate: 10, Tags: []string{"rust"}}))
	require.NoError(t, reg.Register(Module{ID: "c", Category: CategoryCore, TokenEstimate: 10, Tags: []string{"security"}}))

	collect := func() []string {
		var ids []string
		for m := range reg.ModulesByTag("security") {
			ids = append(ids, m.ID)
		}
		return ids
	}

	assert.Equal(t, []string{"a", "c"}, collect())
	// The sequence is restartable: a second iteration yields the same result.
	assert.Equal(t, []string{"a", "c"}, collect())
}

func TestModulesByTag_EarlyStop(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(Module{ID: "a", Category: CategoryCore, TokenEstimate: 10, Tags: []string{"t"}}))
	require.NoError(t, reg.Register(Module{ID: "b", Category: CategoryCore, TokenEstimate: 10, Tags: []string{"t"}}))

	var first string
	for m := range reg.ModulesByTag("t") {
		first = m.ID
		break
	}
	assert.Equal(t, "a", first)
}
