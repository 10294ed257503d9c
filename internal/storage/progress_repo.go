package storage

import (
	"github.com/manav03panchal/studypace/internal/model"
)

// ProgressRepo provides operations for progress log entries.
type ProgressRepo struct {
	db *DB
}

// NewProgressRepo creates a new progress log repository.
func NewProgressRepo(db *DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// Set upserts the dated snapshot of cumulative completion for a material.
func (r *ProgressRepo) Set(ownerKey, materialID, dayKey, dateISO string, done int) error {
	entry := model.NewProgressLogEntry(ownerKey, materialID, dayKey, dateISO, done)
	return r.db.Set(entry)
}

// ListByMaterial retrieves a material's full history ordered by day.
// Day keys sort lexically in chronological order, so key order is date order.
func (r *ProgressRepo) ListByMaterial(ownerKey, materialID string) ([]*model.ProgressLogEntry, error) {
	prefix := model.PrefixProgress + ":" + ownerKey + ":" + materialID + ":"
	return GetAllByPrefix(r.db, prefix, func() *model.ProgressLogEntry {
		return &model.ProgressLogEntry{}
	})
}
