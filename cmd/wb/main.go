package main

import (
	"os"

	"workbench.dev/workbench/internal/cli"
	"workbench.dev/workbench/internal/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Detect the host platform once; everything downstream takes it as a value.
	plat := platform.Detect()

	rootCmd := cli.NewRootCmd(version, commit, date, plat)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
