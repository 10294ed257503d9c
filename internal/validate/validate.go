// Package validate provides input validation helpers for the Studypace CLI.
package validate

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/manav03panchal/studypace/internal/errors"
	"github.com/manav03panchal/studypace/internal/model"
)

const (
	// MaxIDLength is the maximum length for a material ID.
	MaxIDLength = 32
	// MaxTitleLength is the maximum length for a material title.
	MaxTitleLength = 128
	// MaxSubjectLength is the maximum length for a subject.
	MaxSubjectLength = 64
	// MaxTotalCount is a sanity ceiling for a material's total units.
	MaxTotalCount = 1_000_000
)

// idRegex validates material IDs (alphanumeric, dashes, underscores, periods).
var idRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// MaterialID validates a material identifier.
func MaterialID(id string) error {
	if id == "" {
		return errors.NewUserError("Material ID cannot be empty", "Provide a material ID").
			WrapSentinel(errors.ErrMaterialRequired)
	}
	if len(id) > MaxIDLength {
		return errors.NewUserErrorWithField("material", id,
			"Material ID too long",
			"Material IDs must be 32 characters or fewer")
	}
	if !idRegex.MatchString(id) {
		return errors.NewUserErrorWithField("material", id,
			"Invalid material ID format",
			"Material IDs must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods")
	}
	return nil
}

// Title validates a material title.
func Title(title string) error {
	if title == "" {
		return errors.NewUserError("Title cannot be empty", "Provide a material title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Title too long",
			"Titles must be 128 characters or fewer")
	}
	return nil
}

// Subject validates a subject label.
func Subject(subject string) error {
	if subject == "" {
		return nil // Empty is allowed (no subject)
	}
	if utf8.RuneCountInString(subject) > MaxSubjectLength {
		return errors.NewUserErrorWithField("subject", subject,
			"Subject too long",
			"Subjects must be 64 characters or fewer")
	}
	return nil
}

// UnitType validates a unit type string.
func UnitType(unit string) error {
	if unit == "" {
		return nil // Defaults apply
	}
	if !model.UnitType(unit).IsValid() {
		return errors.NewUserErrorWithField("unit", unit,
			"Unknown unit type",
			"Use one of: pages, problems, chapters, cards")
	}
	return nil
}

// TotalCount validates a material's total unit count.
func TotalCount(total int) error {
	if total <= 0 {
		return errors.NewUserErrorWithField("total", fmt.Sprintf("%d", total),
			"Total count must be positive",
			"Provide the total number of units, e.g. --total 320").
			WrapSentinel(errors.ErrInvalidTotalCount)
	}
	if total > MaxTotalCount {
		return errors.NewUserErrorWithField("total", fmt.Sprintf("%d", total),
			"Total count too large",
			"Totals above 1,000,000 units are not supported")
	}
	return nil
}

// Range validates a logged done range. Start must not exceed end.
func Range(start, end int) error {
	if start > end {
		return errors.NewUserErrorWithField("range", fmt.Sprintf("%d-%d", start, end),
			"Invalid range",
			"Ranges are inclusive; start must not be greater than end").
			WrapSentinel(errors.ErrInvalidRange)
	}
	return nil
}

// RangeWithin validates a logged range against a material's bounds.
func RangeWithin(start, end, total int) error {
	if err := Range(start, end); err != nil {
		return err
	}
	if start < 1 || end > total {
		return errors.NewUserErrorWithField("range", fmt.Sprintf("%d-%d", start, end),
			fmt.Sprintf("Range outside material bounds [1, %d]", total),
			"Log only units that exist in the material").
			WrapSentinel(errors.ErrRangeOutOfBounds)
	}
	return nil
}

// DateOrder validates that a deadline is not before the start date.
// A zero deadline (none set) is allowed.
func DateOrder(start, deadline time.Time) error {
	if deadline.IsZero() {
		return nil
	}
	sy, sm, sd := start.Date()
	dy, dm, dd := deadline.Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	d := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	if d.Before(s) {
		return errors.NewUserErrorWithField("deadline", deadline.Format("2006-01-02"),
			"Deadline is before the start date",
			"Set a deadline on or after the start date").
			WrapSentinel(errors.ErrDeadlineBeforeStart)
	}
	return nil
}
