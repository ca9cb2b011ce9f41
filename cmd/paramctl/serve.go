package main

import (
	"github.com/nauticalab/paramfile/internal/api"
	"github.com/nauticalab/paramfile/internal/cli"
	"github.com/spf13/cobra"
)

// ServerConfig holds the flags of the serve command
type ServerConfig struct {
	Port         int
	Bind         string
	RequestLimit int
}

var serverConfig ServerConfig

var serveCmd = &cobra.Command{
	Use:   "serve <param-file>",
	Short: "Serve a parameter file over a read-only HTTP API",
	Long: `Load a parameter file once and serve it over a read-only HTTP API.

Endpoints:
  - GET /api/v1/parameters         all parameters
  - GET /api/v1/parameters/{name}  one parameter (404 unknown, 409 unset)
  - GET /api/v1/dump               plain-text listing
  - GET /api/v1/health, /api/v1/version`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ServeRun(args[0], cli.ServeOptions{
			SchemaPath:   schemaPath,
			Port:         serverConfig.Port,
			Bind:         serverConfig.Bind,
			RequestLimit: serverConfig.RequestLimit,
			Version:      version,
			BuildTime:    buildTime,
			GitCommit:    gitCommit,
			GoVersion:    goVersion,
			Out:          cmd.OutOrStdout(),
		})
	},
}

func init() {
	serveCmd.Flags().IntVarP(&serverConfig.Port, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serverConfig.Bind, "bind", "b", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().IntVar(&serverConfig.RequestLimit, "rate-limit", api.DefaultRequestLimit, "Requests per minute per client IP (0 disables)")
}
