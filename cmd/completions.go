package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeMaterials returns a completion function for material IDs.
func completeMaterials(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.MaterialRepo == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ownerKey, err := ctx.OwnerKey()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	materials, err := ctx.MaterialRepo.List(ownerKey)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, m := range materials {
		if strings.HasPrefix(m.ID, toComplete) {
			completions = append(completions, m.ID+"\t"+m.Title)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeMaterialArgs handles completion for commands that take a material ID.
func completeMaterialArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Only complete first argument
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeMaterials(cmd, args, toComplete)
}
