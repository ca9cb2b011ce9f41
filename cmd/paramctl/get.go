package main

import (
	"github.com/nauticalab/paramfile/internal/cli"
	"github.com/spf13/cobra"
)

var getWithNames bool

var getCmd = &cobra.Command{
	Use:   "get <param-file> <name>...",
	Short: "Print parameter values",
	Long: `Print the values of one or more parameters, one per line.

Fails if a name is not declared in the schema or has no value.

Examples:
  paramctl get server.conf port
  paramctl get --with-names server.conf host port`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.GetRun(args[0], args[1:], cli.GetOptions{
			SchemaPath: schemaPath,
			WithNames:  getWithNames,
			Out:        cmd.OutOrStdout(),
		})
	},
}

func init() {
	getCmd.Flags().BoolVar(&getWithNames, "with-names", false, "Print name=value instead of bare values")
}
