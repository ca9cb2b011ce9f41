package main

import (
	"fmt"

	"github.com/nauticalab/paramfile/internal/git"
	"github.com/spf13/cobra"
)

// Version subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "paramctl version %s\n", version)

		if verbose {
			fmt.Fprintf(out, "  Build time: %s\n", buildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", resolveCommit())
			fmt.Fprintf(out, "  Go version: %s\n", goVersion)
		}
	},
}

// resolveCommit falls back to the repository around the working directory
// for builds without an embedded commit.
func resolveCommit() string {
	if gitCommit != "unknown" {
		return gitCommit
	}
	info, err := git.GetInfo(".")
	if err != nil {
		return gitCommit
	}
	return info.Describe() + " (from working directory)"
}
