package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/studypace/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorDone    = lipgloss.Color("#10B981") // Green
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorIdeal   = lipgloss.Color("#3B82F6") // Blue

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorDone)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleMaterial = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleQuota = lipgloss.NewStyle().
			Bold(true)

	styleIdeal = lipgloss.NewStyle().
			Foreground(colorIdeal)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// MaterialName formats a material title.
func (c *CLIFormatter) MaterialName(name string) string {
	if c.IsColorEnabled() {
		return styleMaterial.Render(name)
	}
	return name
}

// ProgressBar renders a completion bar like [████████------] 53%.
func (c *CLIFormatter) ProgressBar(pct float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	done := strings.Repeat("█", filled)
	rest := strings.Repeat("-", width-filled)
	if c.IsColorEnabled() {
		return fmt.Sprintf("[%s%s] %3.0f%%", styleSuccess.Render(done), styleMuted.Render(rest), pct)
	}
	return fmt.Sprintf("[%s%s] %3.0f%%", done, rest, pct)
}

// PrintTodayCard renders one material's plan for today.
func (c *CLIFormatter) PrintTodayCard(card *model.ProgressCard) {
	c.Printf("%s  %s\n", c.MaterialName(card.Title), c.renderMuted(fmt.Sprintf("(%s)", card.MaterialID)))

	quota := FormatUnits(card.TodayQuota, string(card.UnitType))
	plan := FormatRange(card.PlannedStart, card.PlannedEnd)
	if c.IsColorEnabled() {
		quota = styleQuota.Render(quota)
	}
	c.Printf("  today: %s  →  %s\n", quota, plan)

	if card.Logged() {
		done := FormatRange(*card.DoneStart, *card.DoneEnd)
		c.Printf("  done:  %s\n", c.renderSuccess(done))
	} else {
		c.Printf("  done:  %s\n", c.renderMuted("nothing logged yet"))
	}

	c.Printf("  %s\n", c.renderMuted(fmt.Sprintf("%d/%d by %s (%d days left)",
		card.BaseCompleted, card.TotalCount, FormatDate(card.Deadline), card.DaysLeft)))
}

// PrintTomorrowCard renders one material's plan for tomorrow.
func (c *CLIFormatter) PrintTomorrowCard(card *model.TomorrowCard) {
	c.Printf("%s\n", c.MaterialName(card.Title))

	quota := FormatUnits(card.TomorrowQuota, string(card.UnitType))
	plan := FormatRange(card.PlanStart, card.PlanEnd)
	if c.IsColorEnabled() {
		quota = styleQuota.Render(quota)
	}
	c.Printf("  tomorrow: %s  →  %s\n", quota, plan)
	c.Printf("  %s\n", c.renderMuted(fmt.Sprintf("projected %d/%d after today",
		card.CompletedAfterToday, card.TotalCount)))
}

// PrintTimeline renders an actual-vs-ideal timeline as horizontal bars of
// remaining work. The ideal target position is marked with '|' on each row.
func (c *CLIFormatter) PrintTimeline(points []model.GraphPoint, totalCount, width int) {
	if len(points) == 0 {
		c.Muted("no timeline to show")
		return
	}
	if width < 20 {
		width = 20
	}
	barWidth := width - 24 // room for date and numbers
	if barWidth < 10 {
		barWidth = 10
	}

	scale := func(remaining int) int {
		if totalCount <= 0 {
			return 0
		}
		n := remaining * barWidth / totalCount
		if n > barWidth {
			n = barWidth
		}
		if n < 0 {
			n = 0
		}
		return n
	}

	for _, p := range points {
		row := make([]rune, barWidth)
		for i := range row {
			row[i] = ' '
		}

		if p.Actual != nil {
			for i := 0; i < scale(*p.Actual); i++ {
				row[i] = '█'
			}
		}
		if p.Ideal != nil {
			pos := scale(*p.Ideal)
			if pos >= barWidth {
				pos = barWidth - 1
			}
			row[pos] = '|'
		}

		actual := "   ·"
		if p.Actual != nil {
			actual = fmt.Sprintf("%4d", *p.Actual)
		}
		line := fmt.Sprintf("%s %s %s", p.Date, actual, string(row))
		if c.IsColorEnabled() && p.Actual == nil {
			line = styleMuted.Render(line)
		}
		c.Println(line)
	}

	legend := "remaining work: █ actual  " + c.IdealLabel("| ideal target") + "  · no log"
	c.Muted(legend)
}

func (c *CLIFormatter) renderMuted(text string) string {
	if c.IsColorEnabled() {
		return styleMuted.Render(text)
	}
	return text
}

func (c *CLIFormatter) renderSuccess(text string) string {
	if c.IsColorEnabled() {
		return styleSuccess.Render(text)
	}
	return text
}

// IdealLabel renders a label in the ideal-line color.
func (c *CLIFormatter) IdealLabel(text string) string {
	if c.IsColorEnabled() {
		return styleIdeal.Render(text)
	}
	return text
}
