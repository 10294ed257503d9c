package storage

import (
	"github.com/manav03panchal/studypace/internal/model"
)

// PaceStore bundles the repositories behind the write-path port used by
// the progress reconciler.
type PaceStore struct {
	todos     *TodoRepo
	materials *MaterialRepo
	progress  *ProgressRepo
}

// NewPaceStore creates a store over the given repositories.
func NewPaceStore(todos *TodoRepo, materials *MaterialRepo, progress *ProgressRepo) *PaceStore {
	return &PaceStore{
		todos:     todos,
		materials: materials,
		progress:  progress,
	}
}

// UpsertTodoRange creates or overwrites the day's logged range.
func (s *PaceStore) UpsertTodoRange(ownerKey, dayKey, materialID string, r model.Range) error {
	return s.todos.UpsertRange(ownerKey, dayKey, materialID, r)
}

// IncrementCompleted atomically adjusts the cumulative counter.
func (s *PaceStore) IncrementCompleted(ownerKey, materialID string, delta int) (int, error) {
	return s.materials.IncrementCompleted(ownerKey, materialID, delta)
}

// SetProgressLog upserts the dated completion snapshot.
func (s *PaceStore) SetProgressLog(ownerKey, materialID, dayKey, dateISO string, done int) error {
	return s.progress.Set(ownerKey, materialID, dayKey, dateISO, done)
}
