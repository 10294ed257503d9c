package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/studypace/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard showing today's plan cards and
the current week's actual-vs-ideal timeline. The view refreshes live as
progress is logged.

Keyboard Controls:
  ↑/↓ - Select material
  r   - Refresh data
  q   - Quit dashboard

Examples:
  studypace dashboard
  studypace dash`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ownerKey, err := ctx.OwnerKey()
	if err != nil {
		return err
	}

	config := tui.DashboardConfig{
		DB:           ctx.DB,
		OwnerKey:     ownerKey,
		MaterialRepo: ctx.MaterialRepo,
		TodoRepo:     ctx.TodoRepo,
		ProgressRepo: ctx.ProgressRepo,
	}

	return tui.Run(config)
}
