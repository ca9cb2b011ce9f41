package main

import (
	"github.com/nauticalab/paramfile/internal/cli"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [param-file]",
	Short: "Print the schema, optionally with a parameter file's values as defaults",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paramFile := ""
		if len(args) == 1 {
			paramFile = args[0]
		}
		return cli.SchemaRun(paramFile, cli.SchemaOptions{
			SchemaPath: schemaPath,
			Out:        cmd.OutOrStdout(),
		})
	},
}
