package model

import "fmt"

// Range is an inclusive 1-based unit range within a material.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Span returns the number of units covered by the range.
func (r Range) Span() int {
	return r.End - r.Start + 1
}

// SpanOrZero returns the span, or 0 for a nil range.
func (r *Range) SpanOrZero() int {
	if r == nil {
		return 0
	}
	return r.Span()
}

// TodoEntry is one material's logged done range for one calendar day.
// Both DoneStart and DoneEnd nil means "not yet logged today".
type TodoEntry struct {
	Key        string `json:"key"`
	OwnerKey   string `json:"owner_key" validate:"required"`
	MaterialID string `json:"material_id" validate:"required"`
	DayKey     string `json:"day_key" validate:"required"`
	DoneStart  *int   `json:"done_start"`
	DoneEnd    *int   `json:"done_end"`
}

// SetKey sets the database key for this entry.
func (t *TodoEntry) SetKey(key string) {
	t.Key = key
}

// GetKey returns the database key for this entry.
func (t *TodoEntry) GetKey() string {
	return t.Key
}

// GenerateTodoKey generates a database key for a daily todo entry.
// Keys sort by day first so a whole day can be range-scanned.
func GenerateTodoKey(ownerKey, dayKey, materialID string) string {
	return fmt.Sprintf("%s:%s:%s:%s", PrefixTodo, ownerKey, dayKey, materialID)
}

// NewTodoEntry creates a logged entry for the given day and range.
func NewTodoEntry(ownerKey, dayKey, materialID string, r Range) *TodoEntry {
	start, end := r.Start, r.End
	return &TodoEntry{
		Key:        GenerateTodoKey(ownerKey, dayKey, materialID),
		OwnerKey:   ownerKey,
		MaterialID: materialID,
		DayKey:     dayKey,
		DoneStart:  &start,
		DoneEnd:    &end,
	}
}

// Logged returns true if a range has been recorded for the day.
func (t *TodoEntry) Logged() bool {
	return t.DoneStart != nil && t.DoneEnd != nil
}

// Span returns the logged span for the day, or 0 if nothing is logged.
func (t *TodoEntry) Span() int {
	if !t.Logged() {
		return 0
	}
	return *t.DoneEnd - *t.DoneStart + 1
}

// LoggedRange returns the logged range, or nil if nothing is logged.
func (t *TodoEntry) LoggedRange() *Range {
	if t == nil || !t.Logged() {
		return nil
	}
	return &Range{Start: *t.DoneStart, End: *t.DoneEnd}
}
