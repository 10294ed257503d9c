package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/output"
	"github.com/manav03panchal/studypace/internal/pace"
)

// tomorrowCmd represents the tomorrow command.
var tomorrowCmd = &cobra.Command{
	Use:     "tomorrow",
	Aliases: []string{"tm"},
	Short:   "Show tomorrow's projected study plan",
	Long: `Project where each material will stand after today, then show what
tomorrow demands. Materials projected to be finished are omitted.

Examples:
  studypace tomorrow`,
	RunE: runTomorrow,
}

func init() {
	rootCmd.AddCommand(tomorrowCmd)
}

func runTomorrow(cmd *cobra.Command, args []string) error {
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

	cards := pace.TomorrowCards(materials, todos, now)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.TomorrowResponse{
			Date:  dates.ISO(dates.AddDays(now, 1)),
			Cards: cards,
		})
	}

	cli := ctx.CLIFormatter()
	if len(cards) == 0 {
		cli.Muted("Nothing planned for tomorrow. Everything is either finished or has no deadline.")
		return nil
	}

	cli.Title("Tomorrow · " + dates.ISO(dates.AddDays(now, 1)))
	for _, card := range cards {
		cli.Println()
		cli.PrintTomorrowCard(card)
	}
	return nil
}
