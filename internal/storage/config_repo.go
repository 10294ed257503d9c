package storage

import (
	"github.com/google/uuid"

	"github.com/manav03panchal/studypace/internal/model"
)

// ConfigRepo provides operations for the Config singleton.
type ConfigRepo struct {
	db *DB
}

// NewConfigRepo creates a new config repository.
func NewConfigRepo(db *DB) *ConfigRepo {
	return &ConfigRepo{db: db}
}

// Get retrieves the config, creating it if it doesn't exist.
func (r *ConfigRepo) Get() (*model.Config, error) {
	config := &model.Config{}
	err := r.db.Get(model.KeyConfig, config)
	if err == nil {
		return config, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	// Create new config with generated owner key
	ownerKey, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	config = model.NewConfig(ownerKey.String())
	if err := r.db.Set(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Update updates the config.
func (r *ConfigRepo) Update(config *model.Config) error {
	return r.db.Set(config)
}

// ResetOwner generates a fresh owner key, detaching all existing data.
func (r *ConfigRepo) ResetOwner() (*model.Config, error) {
	ownerKey, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	config := model.NewConfig(ownerKey.String())
	if err := r.db.Set(config); err != nil {
		return nil, err
	}
	return config, nil
}
