package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"workbench.dev/workbench/internal/config"
	"workbench.dev/workbench/internal/project"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set project configuration",
		Long: `Get and set project configuration values.

Examples:
  wb config get interpreter
  wb config set interpreter ruby
  wb config set elevate never
  wb config set props-path config/app.properties`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := project.FindRootFromWd()
			if err != nil {
				return err
			}

			switch args[0] {
			case "interpreter":
				interpreter, err := config.GetInterpreter(root)
				if err != nil {
					return fmt.Errorf("failed to get interpreter: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), interpreter)
			case "elevate":
				policy, err := config.GetElevatePolicy(root)
				if err != nil {
					return fmt.Errorf("failed to get elevate: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(policy))
			case "props-path":
				path, err := config.GetPropsPath(root)
				if err != nil {
					return fmt.Errorf("failed to get props-path: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			default:
				return fmt.Errorf("unknown configuration key: %s", args[0])
			}

			return nil
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := project.FindRootFromWd()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			switch key {
			case "interpreter":
				return config.SetInterpreter(root, value)
			case "elevate":
				return config.SetElevatePolicy(root, value)
			case "props-path":
				return config.SetPropsPath(root, value)
			default:
				return fmt.Errorf("unknown configuration key: %s", key)
			}
		},
	}
}
