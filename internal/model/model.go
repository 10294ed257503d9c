// Package model defines the domain models for Studypace.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixMaterial = "material"
	PrefixTodo     = "todo"
	PrefixProgress = "progress"
	KeyConfig      = "config"
)
