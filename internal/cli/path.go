package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"workbench.dev/workbench/internal/pathutil"
	"workbench.dev/workbench/internal/platform"
)

// newPathCmd creates the path command
func newPathCmd(plat platform.Platform) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Path helpers: normalize, rewrite extensions, list files",
	}

	cmd.AddCommand(newPathNormCmd(plat))
	cmd.AddCommand(newPathExtCmd())
	cmd.AddCommand(newPathLsCmd())

	return cmd
}

// newPathNormCmd creates the path norm command
func newPathNormCmd(plat platform.Platform) *cobra.Command {
	var bases []string
	var forWindows bool

	cmd := &cobra.Command{
		Use:   "norm <path>",
		Short: "Print the absolute, platform-normalized form of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := plat
			if forWindows {
				target = platform.FromHost("windows")
			}

			normalized, err := pathutil.Normalize(pathutil.Expand(args[0]), target, bases...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), normalized)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&bases, "base", "b", nil, "base directory for relative paths (repeatable, outermost first)")
	cmd.Flags().BoolVar(&forWindows, "windows", false, "normalize for a Windows-family target regardless of the host")

	return cmd
}

// newPathExtCmd creates the path ext command
func newPathExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ext <path> <extension>",
		Short: "Print the path with its file extension replaced",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pathutil.ReplaceExt(args[0], args[1]))
			return nil
		},
	}
}

// newPathLsCmd creates the path ls command
func newPathLsCmd() *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List directory entries, dotfiles included",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			var entries []string
			var err error
			if tree {
				entries, err = pathutil.ListTree(dir)
			} else {
				entries, err = pathutil.List(dir)
			}
			if err != nil {
				return err
			}

			for _, entry := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entry)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&tree, "tree", "t", false, "list files recursively")

	return cmd
}
