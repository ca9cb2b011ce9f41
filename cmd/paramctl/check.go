package main

import (
	"github.com/nauticalab/paramfile/internal/cli"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <param-file>...",
	Short: "Check parameter files against the schema",
	Long: `Check parameter files against the schema.

This command reports:
- Malformed lines (missing or empty values), which fail the check
- Parameters not declared in the schema (warnings)
- Declared parameters without a value or default (warnings)

Examples:
  paramctl check server.conf
  paramctl check --schema app.schema.yaml conf/*.conf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cli.CheckRun(args, cli.CheckOptions{
			SchemaPath: schemaPath,
			Verbose:    verbose,
			Out:        cmd.OutOrStdout(),
		})
		return err
	},
}
