package pace

import (
	"time"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/model"
)

// TodayCards builds one plan card per material for the given day.
// todos maps material ID to that material's logged entry for the day
// (missing or unlogged entries mean nothing was recorded yet).
// Materials without a deadline are skipped; pacing requires one.
func TodayCards(materials []*model.Material, todos map[string]*model.TodoEntry, today time.Time) []*model.ProgressCard {
	cards := make([]*model.ProgressCard, 0, len(materials))

	for _, m := range materials {
		if !m.HasDeadline() {
			continue
		}

		todo := todos[m.ID]
		loggedSpan := todo.LoggedRange().SpanOrZero()

		// Completion as of this morning: back out whatever was already
		// logged today so the quota reflects pre-today state.
		baseCompleted := m.Completed - loggedSpan
		if baseCompleted < 0 {
			baseCompleted = 0
		}

		quota := DailyQuota(m.TotalCount, baseCompleted, m.Deadline, today)

		plannedStart := baseCompleted + 1
		plannedEnd := plannedStart + quota - 1
		if plannedEnd > m.TotalCount {
			plannedEnd = m.TotalCount
		}

		card := &model.ProgressCard{
			MaterialID:    m.ID,
			Title:         m.Title,
			UnitType:      m.UnitType,
			TotalCount:    m.TotalCount,
			BaseCompleted: baseCompleted,
			TodayQuota:    quota,
			PlannedStart:  plannedStart,
			PlannedEnd:    plannedEnd,
			Deadline:      m.Deadline,
			DaysLeft:      daysLeftFrom(today, m.Deadline),
		}
		if todo != nil && todo.Logged() {
			card.DoneStart = todo.DoneStart
			card.DoneEnd = todo.DoneEnd
		}

		cards = append(cards, card)
	}

	return cards
}

// TomorrowCards builds at most one card per material for the day after
// today. A material projected to be finished after today gets no card.
//
// Unlike TodayCards, the base here is the persisted cumulative counter:
// if today's range is already logged it is reflected in Completed, and
// otherwise the projection optimistically assumes today's quota is hit.
func TomorrowCards(materials []*model.Material, todos map[string]*model.TodoEntry, today time.Time) []*model.TomorrowCard {
	tomorrow := dates.AddDays(today, 1)
	cards := make([]*model.TomorrowCard, 0, len(materials))

	for _, m := range materials {
		if !m.HasDeadline() {
			continue
		}

		baseCompleted := m.Completed
		todayQuota := DailyQuota(m.TotalCount, baseCompleted, m.Deadline, today)

		completedAfterToday := baseCompleted
		todo := todos[m.ID]
		if todo == nil || !todo.Logged() {
			completedAfterToday = baseCompleted + todayQuota
		}

		if completedAfterToday >= m.TotalCount {
			continue // material will be finished
		}

		tomorrowQuota := DailyQuota(m.TotalCount, completedAfterToday, m.Deadline, tomorrow)

		planStart := completedAfterToday + 1
		planEnd := planStart + tomorrowQuota - 1
		if planEnd > m.TotalCount {
			planEnd = m.TotalCount
		}

		cards = append(cards, &model.TomorrowCard{
			MaterialID:          m.ID,
			Title:               m.Title,
			UnitType:            m.UnitType,
			TotalCount:          m.TotalCount,
			CompletedAfterToday: completedAfterToday,
			TomorrowQuota:       tomorrowQuota,
			PlanStart:           planStart,
			PlanEnd:             planEnd,
		})
	}

	return cards
}

func daysLeftFrom(base, deadline time.Time) int {
	days := dates.DaysBetweenInclusive(base, deadline)
	if days < 1 {
		return 1
	}
	return days
}
