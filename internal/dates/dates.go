// Package dates provides calendar-day arithmetic for pacing.
//
// All pacing math works on calendar days, not wall-clock durations: two
// timestamps on the same local date are zero days apart regardless of the
// hours between them.
package dates

import "time"

const (
	// DayKeyFormat is the compact calendar-day bucket format (YYYYMMDD).
	// Keys in this format sort chronologically as strings.
	DayKeyFormat = "20060102"
	// ISOFormat is the display date format (YYYY-MM-DD).
	ISOFormat = "2006-01-02"
)

// Truncate returns midnight of t's calendar day in t's location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey returns the calendar-day bucket identifier for t.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// ISO returns the ISO date string for t.
func ISO(t time.Time) string {
	return t.Format(ISOFormat)
}

// ParseISO parses an ISO date string into midnight local time.
func ParseISO(s string) (time.Time, error) {
	return time.ParseInLocation(ISOFormat, s, time.Local)
}

// DaysBetweenInclusive returns the number of calendar days in the inclusive
// range [a, b]. Same day returns 1; b before a returns zero or negative.
// Both endpoints are truncated to their calendar day first, and the
// difference is taken in UTC so DST transitions cannot skew the count.
func DaysBetweenInclusive(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au)/(24*time.Hour)) + 1
}

// AddDays returns t shifted by n calendar days, truncated to midnight.
func AddDays(t time.Time, n int) time.Time {
	return Truncate(t).AddDate(0, 0, n)
}

// StartOfISOWeek returns midnight of the Monday of the ISO week containing t.
func StartOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return time.Date(t.Year(), t.Month(), t.Day()-weekday+1, 0, 0, 0, 0, t.Location())
}
