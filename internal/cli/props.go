package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"workbench.dev/workbench/internal/config"
	wberrors "workbench.dev/workbench/internal/errors"
	"workbench.dev/workbench/internal/kv"
	"workbench.dev/workbench/internal/project"
	"workbench.dev/workbench/internal/props"
)

// newPropsCmd creates the props command
func newPropsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "props",
		Short: "Read and edit Java properties files",
		Long: `Read and edit Java properties files.

Examples:
  wb props get build.target
  wb props set build.target dist
  wb props list
  wb props convert --to yaml`,
	}

	cmd.PersistentFlags().StringVarP(&file, "file", "f", "", "properties file (default from project config)")

	cmd.AddCommand(newPropsGetCmd(&file))
	cmd.AddCommand(newPropsSetCmd(&file))
	cmd.AddCommand(newPropsUnsetCmd(&file))
	cmd.AddCommand(newPropsListCmd(&file))
	cmd.AddCommand(newPropsSortCmd(&file))
	cmd.AddCommand(newPropsConvertCmd(&file))

	return cmd
}

// resolvePropsFile picks the properties file to operate on: the --file flag
// when given, otherwise the configured path relative to the project root.
func resolvePropsFile(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}

	root, err := project.FindRootFromWd()
	if err != nil {
		return "", err
	}
	path, err := config.GetPropsPath(root)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return path, nil
}

func readPropsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file: %w", err)
	}
	return props.Decode(string(data))
}

// readPropsFileOrEmpty is readPropsFile for write paths, where a missing
// file just means an empty map.
func readPropsFileOrEmpty(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file: %w", err)
	}
	return props.Decode(string(data))
}

func writePropsFile(path string, m map[string]string) error {
	return os.WriteFile(path, []byte(props.Encode(m)), 0600)
}

// validatePropsKey rejects keys that would not survive a decode: the
// properties grammar splits a key at the first unescaped separator and
// treats lines starting with '#' or '!' as comments.
func validatePropsKey(key string) error {
	if key == "" {
		return fmt.Errorf("key must not be empty")
	}
	if strings.ContainsAny(key, "=: \t\r\n\f") {
		return fmt.Errorf("key must not contain '=', ':', or whitespace")
	}
	if strings.HasPrefix(key, "#") || strings.HasPrefix(key, "!") {
		return fmt.Errorf("key must not start with a comment marker ('#' or '!')")
	}
	return nil
}

// newPropsGetCmd creates the props get command
func newPropsGetCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePropsFile(*file)
			if err != nil {
				return err
			}
			m, err := readPropsFile(path)
			if err != nil {
				return err
			}

			value, ok := m[args[0]]
			if !ok {
				return wberrors.NewKeyNotFoundError(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// newPropsSetCmd creates the props set command
func newPropsSetCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a key to a value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := validatePropsKey(key); err != nil {
				return err
			}

			path, err := resolvePropsFile(*file)
			if err != nil {
				return err
			}
			m, err := readPropsFileOrEmpty(path)
			if err != nil {
				return err
			}

			m[key] = value
			return writePropsFile(path, m)
		},
	}
}

// newPropsUnsetCmd creates the props unset command
func newPropsUnsetCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePropsFile(*file)
			if err != nil {
				return err
			}
			m, err := readPropsFile(path)
			if err != nil {
				return err
			}

			if _, ok := m[args[0]]; !ok {
				return wberrors.NewKeyNotFoundError(args[0])
			}
			delete(m, args[0])
			return writePropsFile(path, m)
		},
	}
}

// newPropsListCmd creates the props list command
func newPropsListCmd(file *string) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all keys and values as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePropsFile(*file)
			if err != nil {
				return err
			}
			m, err := readPropsFile(path)
			if err != nil {
				return err
			}

			if prefix != "" {
				m = kv.Filter(m, func(key, _ string) bool {
					return strings.HasPrefix(key, prefix)
				})
			}

			table := tablewriter.NewTable(cmd.OutOrStdout())
			table.Header([]string{"Key", "Value"})

			var rows [][]string
			for _, key := range kv.SortedKeys(m) {
				rows = append(rows, []string{key, m[key]})
			}
			table.Bulk(rows)
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only list keys with this prefix")

	return cmd
}

// newPropsSortCmd creates the props sort command
func newPropsSortCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Rewrite the file in canonical sorted form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePropsFile(*file)
			if err != nil {
				return err
			}
			m, err := readPropsFile(path)
			if err != nil {
				return err
			}
			return writePropsFile(path, m)
		},
	}
}

// newPropsConvertCmd creates the props convert command
func newPropsConvertCmd(file *string) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Print the file as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePropsFile(*file)
			if err != nil {
				return err
			}
			m, err := readPropsFile(path)
			if err != nil {
				return err
			}

			switch to {
			case "yaml":
				out, err := yaml.Marshal(m)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			case "json":
				out, err := json.MarshalIndent(m, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", to)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "yaml", "output format (yaml or json)")

	return cmd
}
