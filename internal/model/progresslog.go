package model

import "fmt"

// ProgressLogEntry is a per-day snapshot of cumulative completion for a
// material. Written once per save, read-only afterward; the ordered series
// of these entries feeds the timeline view.
type ProgressLogEntry struct {
	Key        string `json:"key"`
	OwnerKey   string `json:"owner_key" validate:"required"`
	MaterialID string `json:"material_id" validate:"required"`
	DayKey     string `json:"day_key" validate:"required"`
	Date       string `json:"date"` // ISO date (YYYY-MM-DD)
	Done       int    `json:"done"`
}

// SetKey sets the database key for this entry.
func (p *ProgressLogEntry) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this entry.
func (p *ProgressLogEntry) GetKey() string {
	return p.Key
}

// GenerateProgressKey generates a database key for a progress log entry.
// Keys sort by material first, then chronologically by day.
func GenerateProgressKey(ownerKey, materialID, dayKey string) string {
	return fmt.Sprintf("%s:%s:%s:%s", PrefixProgress, ownerKey, materialID, dayKey)
}

// NewProgressLogEntry creates a progress log entry.
func NewProgressLogEntry(ownerKey, materialID, dayKey, date string, done int) *ProgressLogEntry {
	return &ProgressLogEntry{
		Key:        GenerateProgressKey(ownerKey, materialID, dayKey),
		OwnerKey:   ownerKey,
		MaterialID: materialID,
		DayKey:     dayKey,
		Date:       date,
		Done:       done,
	}
}
