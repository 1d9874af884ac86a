package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"workbench.dev/workbench/internal/platform"
	"workbench.dev/workbench/internal/ui"
)

// newPlatformCmd creates the platform command
func newPlatformCmd(plat platform.Platform) *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Report the detected host platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.ColorKey("host:"), plat.Host)
			fmt.Fprintf(out, "%s %t\n", ui.ColorKey("windows:"), plat.Windows)

			if plat.Windows {
				exts := make([]string, 0)
				for ext := range plat.ExecutableExtensions() {
					exts = append(exts, ext)
				}
				sort.Strings(exts)
				fmt.Fprintf(out, "%s %s\n", ui.ColorKey("executable extensions:"), strings.Join(exts, " "))
			}
			return nil
		},
	}
}
