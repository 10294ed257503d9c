package output

import (
	"time"

	"github.com/manav03panchal/studypace/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// MaterialOutput represents a material in JSON output.
type MaterialOutput struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subject     string  `json:"subject,omitempty"`
	UnitType    string  `json:"unit_type,omitempty"`
	TotalCount  int     `json:"total_count"`
	Completed   int     `json:"completed"`
	Remaining   int     `json:"remaining"`
	PercentDone float64 `json:"percent_done"`
	StartDate   string  `json:"start_date,omitempty"`
	Deadline    string  `json:"deadline,omitempty"`
	Finished    bool    `json:"finished"`
}

// NewMaterialOutput creates a MaterialOutput from a Material.
func NewMaterialOutput(m *model.Material) *MaterialOutput {
	out := &MaterialOutput{
		ID:          m.ID,
		Title:       m.Title,
		Subject:     m.Subject,
		UnitType:    string(m.UnitType),
		TotalCount:  m.TotalCount,
		Completed:   m.Completed,
		Remaining:   m.Remaining(),
		PercentDone: m.PercentDone(),
		Finished:    m.IsFinished(),
	}
	if !m.StartDate.IsZero() {
		out.StartDate = m.StartDate.Format(time.DateOnly)
	}
	if !m.Deadline.IsZero() {
		out.Deadline = m.Deadline.Format(time.DateOnly)
	}
	return out
}

// MaterialsResponse represents the material list output in JSON.
type MaterialsResponse struct {
	Materials []*MaterialOutput `json:"materials"`
	Count     int               `json:"count"`
}

// NewMaterialsResponse creates a MaterialsResponse from materials.
func NewMaterialsResponse(materials []*model.Material) *MaterialsResponse {
	outputs := make([]*MaterialOutput, len(materials))
	for i, m := range materials {
		outputs[i] = NewMaterialOutput(m)
	}
	return &MaterialsResponse{Materials: outputs, Count: len(outputs)}
}

// TodayResponse represents the today-plan output in JSON.
type TodayResponse struct {
	Date  string                `json:"date"`
	Cards []*model.ProgressCard `json:"cards"`
}

// TomorrowResponse represents the tomorrow-plan output in JSON.
type TomorrowResponse struct {
	Date  string                `json:"date"`
	Cards []*model.TomorrowCard `json:"cards"`
}

// GraphResponse represents the timeline output in JSON.
type GraphResponse struct {
	MaterialID string             `json:"material_id"`
	TotalCount int                `json:"total_count"`
	Week       bool               `json:"week"`
	Points     []model.GraphPoint `json:"points"`
}

// SaveResponse represents a save-progress result in JSON.
type SaveResponse struct {
	Status     string `json:"status"`
	MaterialID string `json:"material_id"`
	Date       string `json:"date"`
	DayKey     string `json:"day_key"`
	DoneStart  int    `json:"done_start"`
	DoneEnd    int    `json:"done_end"`
	Delta      int    `json:"delta"`
	DoneAfter  int    `json:"done_after"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	resp := ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	}
	return j.JSON(resp)
}
