package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/promptdeck/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	mods := []registry.Module{
		{ID: "core-principles", Category: registry.CategoryCore, TokenEstimate: 1000},
		{ID: "sql-safety", Category: registry.CategorySpecialized, TokenEstimate: 800},
		{ID: "security-checklist", Category: registry.CategoryChecklist, TokenEstimate: 500, Items: 10},
		{ID: "perf-checklist", Category: registry.CategoryChecklist, TokenEstimate: 400, Items: 5},
	}
	for _, m := range mods {
		require.NoError(t, reg.Register(m))
	}
	require.NoError(t, reg.Seal())
	return reg
}

func finding(moduleID string, sev Severity) Finding {
	return Finding{ModuleID: moduleID, Severity: sev, Description: "test finding"}
}

func TestSession_Lifecycle(t *testing.T) {
	sess := New(testRegistry(t))
	assert.Equal(t, StatusCreated, sess.Status())
	assert.NotEmpty(t, sess.ID())

	require.NoError(t, sess.Record(finding("sql-safety", SeverityP1)))
	assert.Equal(t, StatusInProgress, sess.Status())

	_, err := sess.Finalize()
	require.NoError(t, err)
	assert.Equal(t, StatusFinalized, sess.Status())
}

func TestSession_RecordAfterFinalize(t *testing.T) {
	sess := New(testRegistry(t))
	_, err := sess.Finalize()
	require.NoError(t, err)

	err = sess.Record(finding("sql-safety", SeverityP2))
	var closedErr *SessionClosedError
	require.ErrorAs(t, err, &closedErr)
	assert.Empty(t, sess.Findings())
}

func TestSession_FinalizeTwice(t *testing.T) {
	sess := New(testRegistry(t))
	_, err := sess.Finalize()
	require.NoError(t, err)

	_, err = sess.Finalize()
	var closedErr *SessionClosedError
	assert.ErrorAs(t, err, &closedErr)
}

func TestSession_RecordUnknownModule(t *testing.T) {
	sess := New(testRegistry(t))
	err := sess.Record(finding("ghost", SeverityP0))
	var unknownErr *registry.UnknownModuleError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "ghost", unknownErr.ID)
}

func TestSession_RecordInvalidSeverity(t *testing.T) {
	sess := New(testRegistry(t))
	err := sess.Record(finding("sql-safety", "P9"))
	assert.Error(t, err)
}

func TestSession_FindingsCopy(t *testing.T) {
	sess := New(testRegistry(t))
	require.NoError(t, sess.Record(finding("sql-safety", SeverityP3)))

	got := sess.Findings()
	require.Len(t, got, 1)
	got[0].ModuleID = "mutated"
	assert.Equal(t, "sql-safety", sess.Findings()[0].ModuleID)
}

func TestScore_ScenarioC(t *testing.T) {
	// One P0 plus five P3 findings is still Critical.
	sess := New(testRegistry(t))
	require.NoError(t, sess.Record(finding("sql-safety", SeverityP0)))
	for i := 0; i < 5; i++ {
		require.NoError(t, sess.Record(finding("core-principles", SeverityP3)))
	}

	rep, err := sess.Finalize()
	require.NoError(t, err)
	assert.Equal(t, RiskCritical, rep.Risk)
	assert.Equal(t, 1, rep.Counts[SeverityP0])
	assert.Equal(t, 5, rep.Counts[SeverityP3])
	assert.Equal(t, 6, rep.TotalFindings)
}

func TestScore_RiskLevels(t *testing.T) {
	tests := []struct {
		name string
		sevs []Severity
		want RiskLevel
	}{
		{"empty session", nil, RiskLow},
		{"only P3", []Severity{SeverityP3, SeverityP3}, RiskLow},
		{"P2 present", []Severity{SeverityP3, SeverityP2}, RiskMedium},
		{"P1 present", []Severity{SeverityP2, SeverityP1}, RiskHigh},
		{"P0 wins", []Severity{SeverityP1, SeverityP0}, RiskCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := New(testRegistry(t))
			for _, sev := range tt.sevs {
				require.NoError(t, sess.Record(finding("sql-safety", sev)))
			}
			rep, err := sess.Finalize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, rep.Risk)
		})
	}
}

func TestScore_ChecklistPercentage(t *testing.T) {
	// security-checklist declares 10 items; two failing findings (P0, P2)
	// and one informational P3 leave 8 of 10 passing.
	sess := New(testRegistry(t))
	require.NoError(t, sess.Record(finding("security-checklist", SeverityP0)))
	require.NoError(t, sess.Record(finding("security-checklist", SeverityP2)))
	require.NoError(t, sess.Record(finding("security-checklist", SeverityP3)))

	rep, err := sess.Finalize()
	require.NoError(t, err)
	require.NotNil(t, rep.ChecklistPercentage)
	assert.InDelta(t, 80.0, *rep.ChecklistPercentage, 0.001)
}

func TestScore_ChecklistPercentage_MultipleModules(t *testing.T) {
	// 10 + 5 items across two referenced checklists, one failure.
	sess := New(testRegistry(t))
	require.NoError(t, sess.Record(finding("security-checklist", SeverityP1)))
	require.NoError(t, sess.Record(finding("perf-checklist", SeverityP3)))

	rep, err := sess.Finalize()
	require.NoError(t, err)
	require.NotNil(t, rep.ChecklistPercentage)
	assert.InDelta(t, float64(14)/15*100, *rep.ChecklistPercentage, 0.001)
}

func TestScore_ChecklistPercentage_Absent(t *testing.T) {
	// No checklist-module findings: percentage must be absent.
	sess := New(testRegistry(t))
	require.NoError(t, sess.Record(finding("sql-safety", SeverityP2)))

	rep, err := sess.Finalize()
	require.NoError(t, err)
	assert.Nil(t, rep.ChecklistPercentage)
}

func TestScore_ChecklistPercentage_ClampedAtZero(t *testing.T) {
	// More failing findings than declared items clamps to 0, never negative.
	sess := New(testRegistry(t))
	for i := 0; i < 7; i++ {
		require.NoError(t, sess.Record(finding("perf-checklist", SeverityP0)))
	}

	rep, err := sess.Finalize()
	require.NoError(t, err)
	require.NotNil(t, rep.ChecklistPercentage)
	assert.Zero(t, *rep.ChecklistPercentage)
}

func TestSeverity_Rank(t *testing.T) {
	assert.Greater(t, SeverityP0.Rank(), SeverityP1.Rank())
	assert.Greater(t, SeverityP1.Rank(), SeverityP2.Rank())
	assert.Greater(t, SeverityP2.Rank(), SeverityP3.Rank())
	assert.False(t, Severity("P9").Valid())
	assert.True(t, SeverityP3.Valid())
}
