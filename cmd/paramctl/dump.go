package main

import (
	"github.com/nauticalab/paramfile/internal/cli"
	"github.com/spf13/cobra"
)

var dumpJSON bool

var dumpCmd = &cobra.Command{
	Use:   "dump <param-file>",
	Short: "Print every parameter and its current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.DumpRun(args[0], cli.DumpOptions{
			SchemaPath: schemaPath,
			JSON:       dumpJSON,
			Out:        cmd.OutOrStdout(),
		})
	},
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "Print parameters as JSON")
}
