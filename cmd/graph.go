package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/studypace/internal/errors"
	"github.com/manav03panchal/studypace/internal/output"
	"github.com/manav03panchal/studypace/internal/pace"
)

// Graph command flags.
var (
	graphFlagWeek bool
)

// graphCmd represents the graph command.
var graphCmd = &cobra.Command{
	Use:     "graph MATERIAL_ID",
	Aliases: []string{"g", "timeline"},
	Short:   "Show a material's actual-vs-ideal timeline",
	Long: `Plot remaining work per day against the linear ideal target from
start date to deadline. Both series run downward toward zero.

Examples:
  studypace graph calculus
  studypace graph calculus --week`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().BoolVarP(&graphFlagWeek, "week", "w", false,
		"Show only the current ISO week (Monday-Sunday)")
	graphCmd.ValidArgsFunction = completeMaterialArgs
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	m, err := getMaterial(args[0])
	if err != nil {
		return err
	}
	if !m.HasDeadline() {
		return errors.NewUserErrorWithField("material", m.ID,
			"Material has no deadline",
			"Set one with 'studypace material edit' to enable the timeline").
			WrapSentinel(errors.ErrNoDeadline)
	}

	logs, err := ctx.ProgressRepo.ListByMaterial(m.OwnerKey, m.ID)
	if err != nil {
		return err
	}

	points := pace.BuildGraphPoints(m, logs)
	if graphFlagWeek {
		points = pace.FilterToISOWeek(points, time.Now())
	}
	ctx.Debugf("built %d timeline points from %d log entries", len(points), len(logs))

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.GraphResponse{
			MaterialID: m.ID,
			TotalCount: m.TotalCount,
			Week:       graphFlagWeek,
			Points:     points,
		})
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	cli := ctx.CLIFormatter()
	cli.Title(m.Title)
	cli.PrintTimeline(points, m.TotalCount, width)
	return nil
}
