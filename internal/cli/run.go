package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"workbench.dev/workbench/internal/config"
	"workbench.dev/workbench/internal/platform"
	"workbench.dev/workbench/internal/project"
	"workbench.dev/workbench/internal/run"
	"workbench.dev/workbench/internal/ui"
)

// newRunCmd creates the run command
func newRunCmd(plat platform.Platform) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "run <script> [args...]",
		Short: "Run a script through the configured interpreter",
		Long: `Run a script through the configured interpreter.

When the interpreter binary belongs to another user, the invocation is
elevated according to the project's elevate policy (never, auto, always).

Examples:
  wb run build.rb
  wb run -i deploy.rb --target staging`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := project.FindRootFromWd()
			if err != nil {
				return err
			}

			interpreter, err := config.GetInterpreter(root)
			if err != nil {
				return err
			}
			policy, err := config.GetElevatePolicy(root)
			if err != nil {
				return err
			}

			console := ui.NewConsole()
			console.Debug("running %v via %s (elevate=%s)", args, interpreter, policy)

			runner := run.NewRunner(interpreter, plat)
			runner.SetWorkingDir(root)
			runner.SetElevatePolicy(policy)
			runner.Confirm = func(commandLine string) bool {
				return ui.Confirm(fmt.Sprintf("Elevate privileges to run %q?", commandLine), true)
			}

			if interactive {
				return runner.RunInteractive(args...)
			}

			out, err := runner.RunRaw(cmd.Context(), args...)
			if err != nil {
				return err
			}
			console.Page(out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "attach the script to the terminal instead of capturing output")

	return cmd
}
