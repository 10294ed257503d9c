// Package parser turns user-supplied flag values into typed inputs.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/errors"
)

// ParseDate parses a natural language date expression into midnight of the
// resolved calendar day. Accepts shortcuts ("today", "tomorrow",
// "yesterday"), ISO dates, and anything go-dateparser understands
// ("next friday", "in 3 weeks", "dec 20").
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	now := time.Now()

	switch strings.ToLower(input) {
	case "", "today", "now":
		return dates.Truncate(now), nil
	case "tomorrow":
		return dates.AddDays(now, 1), nil
	case "yesterday":
		return dates.AddDays(now, -1), nil
	}

	if t, err := dates.ParseISO(input); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("date", input,
			"Could not parse date",
			"Try formats like '2025-03-01', 'next friday', or 'in 3 weeks'").
			WrapSentinel(errors.ErrInvalidDate)
	}

	return dates.Truncate(result.Time), nil
}
