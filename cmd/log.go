package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/studypace/internal/dates"
	"github.com/manav03panchal/studypace/internal/output"
	"github.com/manav03panchal/studypace/internal/parser"
	"github.com/manav03panchal/studypace/internal/storage"
	"github.com/manav03panchal/studypace/internal/validate"
)

// logCmd represents the log command.
var logCmd = &cobra.Command{
	Use:   "log MATERIAL_ID RANGE",
	Short: "Log the range of units finished today",
	Long: `Record the inclusive range of units finished today for a material.

Re-logging the same day overwrites the previous range; the cumulative
completion counter is adjusted by the difference, so editing a day's
entry never double-counts.

Examples:
  studypace log calculus 21-25
  studypace log kanji 150
  studypace log calculus 21-30   (extends an earlier 21-25 entry by 5)`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

func init() {
	logCmd.ValidArgsFunction = completeMaterialArgs
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	m, err := getMaterial(args[0])
	if err != nil {
		return err
	}

	rng, err := parser.ParseRange(args[1])
	if err != nil {
		return err
	}
	if err := validate.RangeWithin(rng.Start, rng.End, m.TotalCount); err != nil {
		return err
	}

	// Read the stored previous range for today so the reconciler computes
	// the delta against what is actually persisted.
	dayKey := dates.DayKey(time.Now())
	prevEntry, err := ctx.TodoRepo.Get(m.OwnerKey, dayKey, m.ID)
	if err != nil && !storage.IsErrKeyNotFound(err) {
		return err
	}

	result, err := ctx.Reconciler.SaveProgress(m.OwnerKey, m.ID, rng.Start, rng.End, prevEntry.LoggedRange())
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.SaveResponse{
			Status:     "saved",
			MaterialID: m.ID,
			Date:       result.Date,
			DayKey:     result.DayKey,
			DoneStart:  rng.Start,
			DoneEnd:    rng.End,
			Delta:      result.Delta,
			DoneAfter:  result.DoneAfter,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Logged %s for %s",
		output.FormatRange(rng.Start, rng.End), m.Title))
	cli.Muted(fmt.Sprintf("  completed %d/%d %s (%+d today)",
		result.DoneAfter, m.TotalCount, m.UnitType, result.Delta))
	if result.DoneAfter >= m.TotalCount {
		cli.Success("Material finished!")
	}
	return nil
}
