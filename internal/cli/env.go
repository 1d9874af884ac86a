package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"workbench.dev/workbench/internal/kv"
	"workbench.dev/workbench/internal/props"
)

// newEnvCmd creates the env command
func newEnvCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the process environment in properties form",
		Long: `Print the process environment as sorted key=value properties text,
with control characters in values escaped.

Examples:
  wb env
  wb env --prefix PATH`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			environment := kv.ToMap(os.Environ())
			if prefix != "" {
				environment = kv.Filter(environment, func(key, _ string) bool {
					return strings.HasPrefix(key, prefix)
				})
			}

			if text := props.Encode(environment); text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only print variables with this prefix")

	return cmd
}
