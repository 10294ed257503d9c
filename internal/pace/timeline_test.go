package pace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/model"
)

func logEntry(materialID string, d time.Time, done int) *model.ProgressLogEntry {
	return model.NewProgressLogEntry("owner-1", materialID, dates.DayKey(d), dates.ISO(d), done)
}

func actualOf(p model.GraphPoint) int {
	if p.Actual == nil {
		return -1
	}
	return *p.Actual
}

func idealOf(p model.GraphPoint) int {
	if p.Ideal == nil {
		return -1
	}
	return *p.Ideal
}

// =============================================================================
// BuildGraphPoints
// =============================================================================

func TestBuildGraphPoints(t *testing.T) {
	t.Run("baseline plus one point per tracked day", func(t *testing.T) {
		m := testMaterial("calculus", 50, 0, day(2025, 3, 14))
		m.StartDate = day(2025, 3, 10)

		points := BuildGraphPoints(m, nil)
		require.Len(t, points, 6)

		// Baseline the day before the start, full work remaining.
		assert.Equal(t, "2025-03-09", points[0].Date)
		assert.Equal(t, 50, actualOf(points[0]))
		assert.Equal(t, 50, idealOf(points[0]))

		assert.Equal(t, "2025-03-10", points[1].Date)
		assert.Equal(t, "2025-03-14", points[5].Date)
	})

	t.Run("ideal descends linearly to zero at the deadline", func(t *testing.T) {
		m := testMaterial("calculus", 50, 0, day(2025, 3, 14))
		m.StartDate = day(2025, 3, 10)

		points := BuildGraphPoints(m, nil)
		require.Len(t, points, 6)

		want := []int{50, 40, 30, 20, 10, 0}
		for i, p := range points {
			assert.Equal(t, want[i], idealOf(p), "point %d (%s)", i, p.Date)
		}
	})

	t.Run("ideal rounds the real-valued rate per day", func(t *testing.T) {
		m := testMaterial("short", 10, 0, day(2025, 3, 12))
		m.StartDate = day(2025, 3, 10)

		points := BuildGraphPoints(m, nil)
		require.Len(t, points, 4)

		// 10/3 per day: 10, then 10-round(3.33)=7, 10-round(6.67)=3, 0.
		assert.Equal(t, 10, idealOf(points[0]))
		assert.Equal(t, 7, idealOf(points[1]))
		assert.Equal(t, 3, idealOf(points[2]))
		assert.Equal(t, 0, idealOf(points[3]))
	})

	t.Run("actual is nil on unlogged days", func(t *testing.T) {
		m := testMaterial("calculus", 50, 25, day(2025, 3, 14))
		m.StartDate = day(2025, 3, 10)

		logs := []*model.ProgressLogEntry{
			logEntry("calculus", day(2025, 3, 10), 10),
			logEntry("calculus", day(2025, 3, 12), 25),
		}

		points := BuildGraphPoints(m, logs)
		require.Len(t, points, 6)

		assert.Equal(t, 40, actualOf(points[1])) // Mar 10: 50-10
		assert.Nil(t, points[2].Actual)          // Mar 11: no log
		assert.Equal(t, 25, actualOf(points[3])) // Mar 12: 50-25
		assert.Nil(t, points[4].Actual)
		assert.Nil(t, points[5].Actual)
	})

	t.Run("actual clamps at zero when done exceeds the total", func(t *testing.T) {
		m := testMaterial("over", 50, 55, day(2025, 3, 14))
		m.StartDate = day(2025, 3, 10)

		logs := []*model.ProgressLogEntry{
			logEntry("over", day(2025, 3, 11), 55),
		}

		points := BuildGraphPoints(m, logs)
		require.Len(t, points, 6)
		assert.Equal(t, 0, actualOf(points[2]))
	})

	t.Run("nil without both dates", func(t *testing.T) {
		noStart := testMaterial("x", 50, 0, day(2025, 3, 14))
		noStart.StartDate = time.Time{}
		assert.Nil(t, BuildGraphPoints(noStart, nil))

		noDeadline := testMaterial("y", 50, 0, time.Time{})
		assert.Nil(t, BuildGraphPoints(noDeadline, nil))

		assert.Nil(t, BuildGraphPoints(nil, nil))
	})

	t.Run("nil when the deadline precedes the start", func(t *testing.T) {
		m := testMaterial("inverted", 50, 0, day(2025, 3, 1))
		m.StartDate = day(2025, 3, 10)
		assert.Nil(t, BuildGraphPoints(m, nil))
	})
}

// =============================================================================
// FilterToISOWeek
// =============================================================================

func TestFilterToISOWeek(t *testing.T) {
	// Week of Monday 2025-03-10 through Sunday 2025-03-16.
	baseDate := day(2025, 3, 12)

	t.Run("always seven points monday through sunday", func(t *testing.T) {
		week := FilterToISOWeek(nil, baseDate)
		require.Len(t, week, 7)
		assert.Equal(t, "2025-03-10", week[0].Date)
		assert.Equal(t, "2025-03-16", week[6].Date)
		for _, p := range week {
			assert.Nil(t, p.Actual)
			assert.Nil(t, p.Ideal)
		}
	})

	t.Run("days inside the range pass through", func(t *testing.T) {
		m := testMaterial("calculus", 70, 0, day(2025, 3, 16))
		m.StartDate = day(2025, 3, 10)
		logs := []*model.ProgressLogEntry{
			logEntry("calculus", day(2025, 3, 10), 10),
		}

		week := FilterToISOWeek(BuildGraphPoints(m, logs), baseDate)
		require.Len(t, week, 7)

		assert.Equal(t, "2025-03-10", week[0].Date)
		assert.Equal(t, 60, actualOf(week[0]))
		assert.Equal(t, 60, idealOf(week[0]))
		assert.Nil(t, week[1].Actual)
		assert.Equal(t, 0, idealOf(week[6]))
	})

	t.Run("days before the tracked range are fully nil", func(t *testing.T) {
		// Material starts Thursday; Monday and Tuesday precede even the
		// Wednesday baseline point and must not show a target.
		m := testMaterial("late", 30, 0, day(2025, 3, 16))
		m.StartDate = day(2025, 3, 13)

		week := FilterToISOWeek(BuildGraphPoints(m, nil), baseDate)
		require.Len(t, week, 7)

		assert.Nil(t, week[0].Ideal) // Mon
		assert.Nil(t, week[1].Ideal) // Tue
		// Wednesday is the baseline point.
		assert.Equal(t, 30, idealOf(week[2]))
		assert.Equal(t, 30, actualOf(week[2]))
	})

	t.Run("ideal carries forward past the deadline", func(t *testing.T) {
		// Material ends Wednesday; the rest of the week keeps the final
		// target so the line stays continuous.
		m := testMaterial("early", 30, 0, day(2025, 3, 12))
		m.StartDate = day(2025, 3, 10)

		week := FilterToISOWeek(BuildGraphPoints(m, nil), baseDate)
		require.Len(t, week, 7)

		assert.Equal(t, 0, idealOf(week[2])) // Wed, the deadline
		for i := 3; i < 7; i++ {
			assert.Nil(t, week[i].Actual)
			assert.Equal(t, 0, idealOf(week[i]), "day %d", i)
		}
	})

	t.Run("week entirely before the material is all nil", func(t *testing.T) {
		m := testMaterial("future", 30, 0, day(2025, 4, 10))
		m.StartDate = day(2025, 4, 1)

		week := FilterToISOWeek(BuildGraphPoints(m, nil), baseDate)
		require.Len(t, week, 7)
		for _, p := range week {
			assert.Nil(t, p.Actual)
			assert.Nil(t, p.Ideal)
		}
	})
}
