package storage

import (
	"github.com/manav03panchal/studypace/internal/model"
)

// TodoRepo provides operations for daily todo entries.
type TodoRepo struct {
	db *DB
}

// NewTodoRepo creates a new todo repository.
func NewTodoRepo(db *DB) *TodoRepo {
	return &TodoRepo{db: db}
}

// Get retrieves one material's entry for a day. Returns ErrKeyNotFound
// if nothing was logged.
func (r *TodoRepo) Get(ownerKey, dayKey, materialID string) (*model.TodoEntry, error) {
	entry := &model.TodoEntry{}
	key := model.GenerateTodoKey(ownerKey, dayKey, materialID)
	if err := r.db.Get(key, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpsertRange creates or overwrites the day's logged range for a material.
func (r *TodoRepo) UpsertRange(ownerKey, dayKey, materialID string, rng model.Range) error {
	entry := model.NewTodoEntry(ownerKey, dayKey, materialID, rng)
	return r.db.Set(entry)
}

// ListDay retrieves all entries for a day, keyed by material ID.
func (r *TodoRepo) ListDay(ownerKey, dayKey string) (map[string]*model.TodoEntry, error) {
	prefix := model.PrefixTodo + ":" + ownerKey + ":" + dayKey + ":"
	entries, err := GetAllByPrefix(r.db, prefix, func() *model.TodoEntry {
		return &model.TodoEntry{}
	})
	if err != nil {
		return nil, err
	}

	byMaterial := make(map[string]*model.TodoEntry, len(entries))
	for _, e := range entries {
		byMaterial[e.MaterialID] = e
	}
	return byMaterial, nil
}
