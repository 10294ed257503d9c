package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Material
// =============================================================================

func TestNewMaterial(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	deadline := time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local)
	m := NewMaterial("owner-1", "calculus", "Calculus, 7th ed.", 320, start, deadline, UnitPages, "math")

	require.NotNil(t, m)
	assert.Equal(t, "material:owner-1:calculus", m.Key)
	assert.Equal(t, "calculus", m.ID)
	assert.Equal(t, "owner-1", m.OwnerKey)
	assert.Equal(t, 320, m.TotalCount)
	assert.Equal(t, 0, m.Completed)
	assert.Equal(t, UnitPages, m.UnitType)
	assert.Equal(t, "math", m.Subject)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestMaterialSetGetKey(t *testing.T) {
	m := &Material{}
	m.SetKey("material:owner-1:calculus")
	assert.Equal(t, "material:owner-1:calculus", m.GetKey())
}

func TestGenerateMaterialKey(t *testing.T) {
	assert.Equal(t, "material:owner-1:calculus", GenerateMaterialKey("owner-1", "calculus"))
}

func TestMaterialHasDeadline(t *testing.T) {
	with := &Material{Deadline: time.Now()}
	without := &Material{}
	assert.True(t, with.HasDeadline())
	assert.False(t, without.HasDeadline())
}

func TestMaterialRemaining(t *testing.T) {
	assert.Equal(t, 60, (&Material{TotalCount: 100, Completed: 40}).Remaining())
	assert.Equal(t, 0, (&Material{TotalCount: 100, Completed: 100}).Remaining())
	// Overshoot clamps; the stored counter itself may exceed the total.
	assert.Equal(t, 0, (&Material{TotalCount: 100, Completed: 130}).Remaining())
}

func TestMaterialIsFinished(t *testing.T) {
	assert.False(t, (&Material{TotalCount: 100, Completed: 99}).IsFinished())
	assert.True(t, (&Material{TotalCount: 100, Completed: 100}).IsFinished())
	assert.True(t, (&Material{TotalCount: 100, Completed: 130}).IsFinished())
}

func TestMaterialPercentDone(t *testing.T) {
	assert.InDelta(t, 40.0, (&Material{TotalCount: 100, Completed: 40}).PercentDone(), 0.001)
	assert.Equal(t, 100.0, (&Material{TotalCount: 100, Completed: 130}).PercentDone())
	assert.Equal(t, 0.0, (&Material{TotalCount: 0, Completed: 10}).PercentDone())
	assert.Equal(t, 0.0, (&Material{TotalCount: 100, Completed: -5}).PercentDone())
}

func TestUnitTypeIsValid(t *testing.T) {
	for _, u := range ValidUnitTypes {
		assert.True(t, u.IsValid(), string(u))
	}
	assert.False(t, UnitType("minutes").IsValid())
	assert.False(t, UnitType("").IsValid())
}

// =============================================================================
// Range and TodoEntry
// =============================================================================

func TestRangeSpan(t *testing.T) {
	assert.Equal(t, 5, Range{Start: 21, End: 25}.Span())
	assert.Equal(t, 1, Range{Start: 7, End: 7}.Span())
}

func TestRangeSpanOrZero(t *testing.T) {
	var nilRange *Range
	assert.Equal(t, 0, nilRange.SpanOrZero())
	assert.Equal(t, 5, (&Range{Start: 21, End: 25}).SpanOrZero())
}

func TestGenerateTodoKey(t *testing.T) {
	key := GenerateTodoKey("owner-1", "20250310", "calculus")
	assert.Equal(t, "todo:owner-1:20250310:calculus", key)
}

func TestNewTodoEntry(t *testing.T) {
	entry := NewTodoEntry("owner-1", "20250310", "calculus", Range{Start: 21, End: 25})

	require.True(t, entry.Logged())
	assert.Equal(t, 21, *entry.DoneStart)
	assert.Equal(t, 25, *entry.DoneEnd)
	assert.Equal(t, 5, entry.Span())
	assert.Equal(t, "todo:owner-1:20250310:calculus", entry.Key)
}

func TestTodoEntryUnlogged(t *testing.T) {
	entry := &TodoEntry{OwnerKey: "owner-1", MaterialID: "calculus", DayKey: "20250310"}

	assert.False(t, entry.Logged())
	assert.Equal(t, 0, entry.Span())
	assert.Nil(t, entry.LoggedRange())
}

func TestTodoEntryLoggedRange(t *testing.T) {
	t.Run("nil entry", func(t *testing.T) {
		var entry *TodoEntry
		assert.Nil(t, entry.LoggedRange())
	})

	t.Run("logged entry", func(t *testing.T) {
		entry := NewTodoEntry("owner-1", "20250310", "calculus", Range{Start: 21, End: 25})
		r := entry.LoggedRange()
		require.NotNil(t, r)
		assert.Equal(t, Range{Start: 21, End: 25}, *r)
	})
}

// =============================================================================
// ProgressLogEntry
// =============================================================================

func TestGenerateProgressKey(t *testing.T) {
	key := GenerateProgressKey("owner-1", "calculus", "20250310")
	assert.Equal(t, "progress:owner-1:calculus:20250310", key)
}

func TestNewProgressLogEntry(t *testing.T) {
	entry := NewProgressLogEntry("owner-1", "calculus", "20250310", "2025-03-10", 25)

	assert.Equal(t, "progress:owner-1:calculus:20250310", entry.Key)
	assert.Equal(t, "2025-03-10", entry.Date)
	assert.Equal(t, 25, entry.Done)
}

// =============================================================================
// Config
// =============================================================================

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("owner-abc")
	assert.Equal(t, KeyConfig, cfg.GetKey())
	assert.Equal(t, "owner-abc", cfg.OwnerKey)
}
