package main

import (
	"github.com/nauticalab/paramfile/internal/cli"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init <out-file>",
	Short: "Write a parameter file with the schema defaults",
	Long: `Write a parameter file containing every parameter that has a default.

Parameters without a default are left out. An existing file is only
replaced with --force.

Examples:
  paramctl init server.conf
  paramctl init --force --schema app.schema.yaml defaults.conf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.InitRun(args[0], cli.InitOptions{
			SchemaPath: schemaPath,
			Force:      initForce,
			Out:        cmd.OutOrStdout(),
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
}
