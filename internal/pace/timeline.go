package pace

import (
	"math"
	"time"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/model"
)

// BuildGraphPoints builds the full actual-vs-ideal timeline for a material.
//
// Both series are remaining work, so they run downward toward zero. The
// sequence starts with a baseline point one day before the start date where
// actual == ideal == totalCount, then one point per day of the inclusive
// [startDate, deadline] range. Actual is nil on days with no log entry,
// which breaks the plotted line; the ideal target is always defined and
// follows a linear real-valued rate rounded per day.
//
// Returns nil if either date is missing or the range is empty.
func BuildGraphPoints(m *model.Material, logs []*model.ProgressLogEntry) []model.GraphPoint {
	if m == nil || m.StartDate.IsZero() || m.Deadline.IsZero() {
		return nil
	}

	start := dates.Truncate(m.StartDate)
	totalDays := dates.DaysBetweenInclusive(start, m.Deadline)
	if totalDays <= 0 {
		return nil
	}

	// Last write wins per day; logs arrive sorted by day key.
	doneByDate := make(map[string]int, len(logs))
	for _, l := range logs {
		doneByDate[l.Date] = l.Done
	}

	points := make([]model.GraphPoint, 0, totalDays+1)

	// Baseline anchor: the day before tracking starts, nothing done yet.
	baseline := m.TotalCount
	baselineIdeal := m.TotalCount
	points = append(points, model.GraphPoint{
		Date:   dates.ISO(dates.AddDays(start, -1)),
		Actual: &baseline,
		Ideal:  &baselineIdeal,
	})

	idealPerDay := float64(m.TotalCount) / float64(totalDays)

	for i := 0; i < totalDays; i++ {
		day := dates.AddDays(start, i)
		label := dates.ISO(day)

		var actual *int
		if done, ok := doneByDate[label]; ok {
			remaining := m.TotalCount - done
			if remaining < 0 {
				remaining = 0
			}
			actual = &remaining
		}

		ideal := m.TotalCount - int(math.Round(idealPerDay*float64(i+1)))
		if ideal < 0 {
			ideal = 0
		}

		points = append(points, model.GraphPoint{
			Date:   label,
			Actual: actual,
			Ideal:  &ideal,
		})
	}

	return points
}

// FilterToISOWeek projects a full timeline onto the Monday-Sunday week
// containing baseDate. The result always has exactly 7 points, one per
// ISO weekday:
//
//   - days present in the input are passed through unchanged,
//   - days before the material's tracked range get nil actual and nil ideal,
//   - days inside or after the range with no input point get nil actual and
//     the last known ideal carried forward, keeping the target line
//     continuous across unlogged days.
func FilterToISOWeek(points []model.GraphPoint, baseDate time.Time) []model.GraphPoint {
	monday := dates.StartOfISOWeek(baseDate)

	labels := make([]string, 7)
	for i := range labels {
		labels[i] = dates.ISO(dates.AddDays(monday, i))
	}

	byDate := make(map[string]model.GraphPoint, len(points))
	for _, p := range points {
		byDate[p.Date] = p
	}

	firstIndex := -1
	for i, label := range labels {
		if _, ok := byDate[label]; ok {
			firstIndex = i
			break
		}
	}

	week := make([]model.GraphPoint, 0, 7)
	var lastIdeal *int
	for i, label := range labels {
		if p, ok := byDate[label]; ok {
			week = append(week, p)
			lastIdeal = p.Ideal
			continue
		}
		if firstIndex != -1 && i < firstIndex {
			// Before the tracked range even started.
			week = append(week, model.GraphPoint{Date: label})
			continue
		}
		week = append(week, model.GraphPoint{Date: label, Ideal: lastIdeal})
	}

	return week
}
