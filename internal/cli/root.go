// Package cli implements the wb command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"workbench.dev/workbench/internal/platform"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string, plat platform.Platform) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wb",
		Short:         "Workbench is a grab-bag of build-tool helpers",
		Long:          "Workbench bundles the small utilities build scripts keep reinventing:\na Java properties codec, path normalization, platform detection, and a\nscript runner with privilege elevation.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Add subcommands
	rootCmd.AddCommand(newPropsCmd())
	rootCmd.AddCommand(newRunCmd(plat))
	rootCmd.AddCommand(newPathCmd(plat))
	rootCmd.AddCommand(newPlatformCmd(plat))
	rootCmd.AddCommand(newEnvCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
