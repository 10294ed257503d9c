// Package progress implements the write path: reconciling a day's logged
// range into the cumulative completion counter and the dated history.
package progress

import (
	"fmt"
	"time"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/errors"
	"github.com/manav03panchal/studypace/internal/logging"
	"github.com/manav03panchal/studypace/internal/model"
)

// Store is the persistence port the Reconciler writes through. The
// IncrementCompleted implementation must be a true atomic add at the
// storage layer; the Reconciler never reads, adds in memory, and writes
// back.
type Store interface {
	// UpsertTodoRange creates or overwrites the day's logged range for a material.
	UpsertTodoRange(ownerKey, dayKey, materialID string, r model.Range) error
	// IncrementCompleted atomically adds delta to the material's cumulative
	// counter and returns the resulting value.
	IncrementCompleted(ownerKey, materialID string, delta int) (int, error)
	// SetProgressLog upserts the dated snapshot of cumulative completion.
	SetProgressLog(ownerKey, materialID, dayKey, dateISO string, done int) error
}

// SaveResult reports what a SaveProgress call wrote.
type SaveResult struct {
	DayKey    string `json:"day_key"`
	Date      string `json:"date"`
	Delta     int    `json:"delta"`
	DoneAfter int    `json:"done_after"`
}

// Reconciler orchestrates the three-way write for a saved range:
// today's todo entry, the cumulative counter, and the dated log entry.
type Reconciler struct {
	store Store

	// Now returns the current time; overridable in tests.
	Now func() time.Time
}

// NewReconciler creates a reconciler over the given store.
func NewReconciler(store Store) *Reconciler {
	return &Reconciler{
		store: store,
		Now:   time.Now,
	}
}

// SaveProgress persists a newly logged range for today, replacing prev
// (the range previously persisted for this material and day, or nil if
// none existed). The completion delta is the difference between the new
// span and the previous span, so re-saving an edited range never
// double-counts.
//
// The three writes happen in order with no rollback: a failure partway
// through surfaces as a SystemError and the caller retries the whole call,
// re-reading the stored range as prev so the counter converges.
func (r *Reconciler) SaveProgress(ownerKey, materialID string, newStart, newEnd int, prev *model.Range) (*SaveResult, error) {
	if ownerKey == "" {
		return nil, errors.NewUserError("Owner key is missing", "").
			WrapSentinel(errors.ErrOwnerRequired)
	}
	if materialID == "" {
		return nil, errors.NewUserError("Material ID is missing", "Provide a material ID").
			WrapSentinel(errors.ErrMaterialRequired)
	}
	if newStart > newEnd {
		return nil, errors.NewUserErrorWithField("range",
			fmt.Sprintf("%d-%d", newStart, newEnd),
			"Invalid range",
			"Start must not be greater than end").
			WrapSentinel(errors.ErrInvalidRange)
	}

	now := r.Now()
	dayKey := dates.DayKey(now)
	dateISO := dates.ISO(now)

	newRange := model.Range{Start: newStart, End: newEnd}
	if err := r.store.UpsertTodoRange(ownerKey, dayKey, materialID, newRange); err != nil {
		return nil, errors.NewSystemErrorWithOp("save_todo", "failed to save the day's log entry", err)
	}

	delta := newRange.Span() - prev.SpanOrZero()

	doneAfter, err := r.store.IncrementCompleted(ownerKey, materialID, delta)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("increment_completed", "failed to update the completion counter", err)
	}

	if err := r.store.SetProgressLog(ownerKey, materialID, dayKey, dateISO, doneAfter); err != nil {
		return nil, errors.NewSystemErrorWithOp("set_progress_log", "failed to record the progress snapshot", err)
	}

	logging.LogOperation("save_progress",
		logging.KeyMaterial, materialID,
		logging.KeyDay, dayKey,
		logging.KeyDelta, delta,
		logging.KeyDone, doneAfter,
	)

	return &SaveResult{
		DayKey:    dayKey,
		Date:      dateISO,
		Delta:     delta,
		DoneAfter: doneAfter,
	}, nil
}
