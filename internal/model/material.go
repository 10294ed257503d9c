package model

import (
	"fmt"
	"time"
)

// UnitType describes what a material's work units are.
type UnitType string

const (
	UnitPages    UnitType = "pages"
	UnitProblems UnitType = "problems"
	UnitChapters UnitType = "chapters"
	UnitCards    UnitType = "cards"
)

// ValidUnitTypes lists the accepted unit types.
var ValidUnitTypes = []UnitType{UnitPages, UnitProblems, UnitChapters, UnitCards}

// IsValid returns true if the unit type is one of the known values.
func (u UnitType) IsValid() bool {
	for _, v := range ValidUnitTypes {
		if u == v {
			return true
		}
	}
	return false
}

// Material represents a trackable unit of study: a book, a problem set,
// a flashcard deck. TotalCount is the full amount of work, Completed the
// cumulative units finished as of the last reconciliation.
type Material struct {
	Key        string    `json:"key"`
	ID         string    `json:"id" validate:"required"`
	OwnerKey   string    `json:"owner_key" validate:"required"`
	Title      string    `json:"title" validate:"required,max=128"`
	TotalCount int       `json:"total_count" validate:"required,gt=0"`
	Completed  int       `json:"completed"`
	StartDate  time.Time `json:"start_date"`
	Deadline   time.Time `json:"deadline"`
	UnitType   UnitType  `json:"unit_type" validate:"omitempty,oneof=pages problems chapters cards"`
	Subject    string    `json:"subject,omitempty" validate:"omitempty,max=64"`
	CreatedAt  time.Time `json:"created_at"`
}

// SetKey sets the database key for this material.
func (m *Material) SetKey(key string) {
	m.Key = key
}

// GetKey returns the database key for this material.
func (m *Material) GetKey() string {
	return m.Key
}

// GenerateMaterialKey generates a database key for a material.
func GenerateMaterialKey(ownerKey, id string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixMaterial, ownerKey, id)
}

// NewMaterial creates a new material with the given parameters.
func NewMaterial(ownerKey, id, title string, totalCount int, startDate, deadline time.Time, unitType UnitType, subject string) *Material {
	return &Material{
		Key:        GenerateMaterialKey(ownerKey, id),
		ID:         id,
		OwnerKey:   ownerKey,
		Title:      title,
		TotalCount: totalCount,
		StartDate:  startDate,
		Deadline:   deadline,
		UnitType:   unitType,
		Subject:    subject,
		CreatedAt:  time.Now(),
	}
}

// HasDeadline returns true if a deadline is set. Pacing requires one;
// materials without a deadline are excluded from plan generation.
func (m *Material) HasDeadline() bool {
	return !m.Deadline.IsZero()
}

// Remaining returns the units of work left, clamped at zero. The stored
// Completed counter itself is never clamped (see Reconciler).
func (m *Material) Remaining() int {
	remaining := m.TotalCount - m.Completed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFinished returns true if cumulative completion has reached the total.
func (m *Material) IsFinished() bool {
	return m.Completed >= m.TotalCount
}

// PercentDone returns completion as a percentage in [0, 100].
func (m *Material) PercentDone() float64 {
	if m.TotalCount <= 0 {
		return 0
	}
	pct := float64(m.Completed) / float64(m.TotalCount) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
