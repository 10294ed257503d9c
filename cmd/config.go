package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/studypace/internal/storage"
)

// Config command flags.
var (
	configFlagResetOwner bool
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or reset local configuration",
	Long: `Show the local configuration: owner key and database path.

The owner key is generated on first use and namespaces all stored data.

Examples:
  studypace config
  studypace config --reset-owner`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configFlagResetOwner, "reset-owner", false,
		"Generate a fresh owner key, detaching all existing data")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configFlagResetOwner {
		cfg, err := ctx.ConfigRepo.ResetOwner()
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.JSONFormatter().JSON(map[string]string{
				"status":    "reset",
				"owner_key": cfg.OwnerKey,
			})
		}
		ctx.CLIFormatter().Success("Owner key reset")
		ctx.CLIFormatter().Muted("  " + cfg.OwnerKey)
		return nil
	}

	cfg, err := ctx.ConfigRepo.Get()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(map[string]string{
			"owner_key": cfg.OwnerKey,
			"db_path":   storage.DefaultPath(),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title("Configuration")
	cli.Printf("  owner key: %s\n", cfg.OwnerKey)
	cli.Printf("  database:  %s\n", storage.DefaultPath())
	return nil
}
