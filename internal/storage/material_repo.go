package storage

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/studypace/internal/model"
)

// MaterialRepo provides operations for Material entities.
type MaterialRepo struct {
	db *DB
}

// NewMaterialRepo creates a new material repository.
func NewMaterialRepo(db *DB) *MaterialRepo {
	return &MaterialRepo{db: db}
}

// Create creates a new material.
func (r *MaterialRepo) Create(m *model.Material) error {
	m.Key = model.GenerateMaterialKey(m.OwnerKey, m.ID)
	return r.db.Set(m)
}

// Get retrieves a material by owner and ID.
func (r *MaterialRepo) Get(ownerKey, id string) (*model.Material, error) {
	m := &model.Material{}
	key := model.GenerateMaterialKey(ownerKey, id)
	if err := r.db.Get(key, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update updates an existing material.
func (r *MaterialRepo) Update(m *model.Material) error {
	return r.db.Set(m)
}

// Delete removes a material. Progress history and todo entries for the
// material are left in place; they are keyed independently.
func (r *MaterialRepo) Delete(ownerKey, id string) error {
	key := model.GenerateMaterialKey(ownerKey, id)
	return r.db.Delete(key)
}

// List retrieves all materials for an owner, in key order.
func (r *MaterialRepo) List(ownerKey string) ([]*model.Material, error) {
	prefix := model.PrefixMaterial + ":" + ownerKey + ":"
	return GetAllByPrefix(r.db, prefix, func() *model.Material {
		return &model.Material{}
	})
}

// Exists checks if a material exists.
func (r *MaterialRepo) Exists(ownerKey, id string) (bool, error) {
	key := model.GenerateMaterialKey(ownerKey, id)
	return r.db.Exists(key)
}

// IncrementCompleted atomically adds delta to a material's cumulative
// completion counter and returns the resulting value.
//
// The read-add-write happens inside a single Badger transaction, retried
// on write conflict, so concurrent increments to the same material never
// lose updates. The counter is deliberately not clamped to [0, TotalCount];
// out-of-range logged spans push it out of range and downstream pacing
// clamps the derived remaining work instead.
func (r *MaterialRepo) IncrementCompleted(ownerKey, materialID string, delta int) (int, error) {
	key := []byte(model.GenerateMaterialKey(ownerKey, materialID))

	var after int
	for {
		err := r.db.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(key)
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return ErrKeyNotFound
				}
				return err
			}

			var m model.Material
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return err
			}

			m.Completed += delta
			after = m.Completed

			data, err := json.Marshal(&m)
			if err != nil {
				return err
			}
			return txn.Set(key, data)
		})

		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return after, nil
	}
}
