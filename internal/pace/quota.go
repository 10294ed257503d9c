// Package pace implements the progress-pacing engine: daily quota
// computation, today/tomorrow plan cards, and the actual-vs-ideal
// timeline. Everything here is a pure function over materials and
// their logged entries; persistence never enters this package.
package pace

import (
	"time"

	"github.com/manav03panchal/studypace/internal/dates"
)

// DailyQuota returns the number of units that must be finished per day,
// starting on baseDate, for the remaining work to be done by the deadline.
//
// Remaining work is clamped at zero and the inclusive days-left count is
// clamped at one, so the result is always >= 0 and a past deadline demands
// the full remainder immediately. This is the single pacing formula; every
// planning path must go through it.
func DailyQuota(totalCount, completed int, deadline, baseDate time.Time) int {
	remaining := totalCount - completed
	if remaining < 0 {
		remaining = 0
	}

	daysLeft := dates.DaysBetweenInclusive(baseDate, deadline)
	if daysLeft < 1 {
		daysLeft = 1
	}

	// Integer ceil(remaining / daysLeft).
	return (remaining + daysLeft - 1) / daysLeft
}
