package model

import "time"

// ProgressCard is the view model for one material's plan for today.
// Recomputed on every read; never persisted.
type ProgressCard struct {
	MaterialID    string    `json:"material_id"`
	Title         string    `json:"title"`
	UnitType      UnitType  `json:"unit_type"`
	TotalCount    int       `json:"total_count"`
	BaseCompleted int       `json:"base_completed"` // completion as of this morning
	TodayQuota    int       `json:"today_quota"`
	PlannedStart  int       `json:"planned_start"`
	PlannedEnd    int       `json:"planned_end"`
	DoneStart     *int      `json:"done_start"`
	DoneEnd       *int      `json:"done_end"`
	Deadline      time.Time `json:"deadline"`
	DaysLeft      int       `json:"days_left"`
}

// Logged returns true if a done range has been recorded today.
func (c *ProgressCard) Logged() bool {
	return c.DoneStart != nil && c.DoneEnd != nil
}

// TomorrowCard is the view model for one material's plan for tomorrow.
// Materials projected to be finished after today get no card.
type TomorrowCard struct {
	MaterialID          string   `json:"material_id"`
	Title               string   `json:"title"`
	UnitType            UnitType `json:"unit_type"`
	TotalCount          int      `json:"total_count"`
	CompletedAfterToday int      `json:"completed_after_today"`
	TomorrowQuota       int      `json:"tomorrow_quota"`
	PlanStart           int      `json:"plan_start"`
	PlanEnd             int      `json:"plan_end"`
}

// GraphPoint is one day on the actual-vs-ideal timeline. Both series are
// remaining work, so smaller is better and zero means done. A nil Actual
// breaks the line on days with no log; Ideal is nil only for week-view
// days before the material's tracked range.
type GraphPoint struct {
	Date   string `json:"date"`
	Actual *int   `json:"actual"`
	Ideal  *int   `json:"ideal"`
}
