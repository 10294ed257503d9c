package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/output"
	"github.com/manav03panchal/studypace/internal/pace"
)

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's study plan",
	Long: `Show one plan card per material: how much must be done today to stay
on pace, and what has already been logged.

Examples:
  studypace today
  studypace today --format json`,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	ownerKey, err := ctx.OwnerKey()
	if err != nil {
		return err
	}

	now := time.Now()
	materials, err := ctx.MaterialRepo.List(ownerKey)
	if err != nil {
		return err
	}
	todos, err := ctx.TodoRepo.ListDay(ownerKey, dates.DayKey(now))
	if err != nil {
		return err
	}

	cards := pace.TodayCards(materials, todos, now)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.TodayResponse{
			Date:  dates.ISO(now),
			Cards: cards,
		})
	}

	cli := ctx.CLIFormatter()
	if len(cards) == 0 {
		cli.Muted("Nothing to plan. Add a material with a deadline first.")
		return nil
	}

	cli.Title("Today · " + dates.ISO(now))
	for _, card := range cards {
		cli.Println()
		cli.PrintTodayCard(card)
	}
	return nil
}
