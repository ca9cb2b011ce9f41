package main

import (
	"os"

	"github.com/nauticalab/paramfile/internal/cli"
	"github.com/nauticalab/paramfile/internal/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags (available to all commands)
	verbose    bool
	schemaPath string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paramctl",
	Short: "Inspect and generate name/value parameter files",
	Long: `paramctl reads plain "name value" parameter files against a YAML schema.

The schema lists every parameter a tool expects, with optional defaults.
paramctl checks parameter files for unknown or missing parameters, prints
values, writes default files and can serve a loaded file over HTTP.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "Schema file declaring the known parameters (default "+cli.DefaultSchemaPath+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level for diagnostics (debug, info, warn, error)")

	// Add subcommands to root
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupGlobals resolves the schema path and configures logging. Flags win
// over the user config, which wins over built-in defaults.
func setupGlobals(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadCLIConfig()
	if err != nil {
		return err
	}

	if schemaPath == "" {
		schemaPath = cfg.Schema
	}

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if level == "" {
		level = "warn"
		if verbose {
			level = "debug"
		}
	}

	log.Reset()
	log.Configure(log.Config{Level: level, Output: os.Stderr, Service: "paramctl"})
	return nil
}
