package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nauticalab/paramfile/internal/api"
)

// ServeOptions holds configuration for the serve command
type ServeOptions struct {
	SchemaPath   string
	Port         int
	Bind         string
	RequestLimit int
	Version      string
	BuildTime    string
	GitCommit    string
	GoVersion    string
	Out          io.Writer
}

// ServeRun loads paramFile once and serves it read-only until interrupted
func ServeRun(paramFile string, opts ServeOptions) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serve(ctx, paramFile, opts)
}

func serve(ctx context.Context, paramFile string, opts ServeOptions) error {
	l, err := loadParamFile(opts.SchemaPath, paramFile)
	if err != nil {
		return err
	}
	l.logUnknown()

	server, err := api.NewServer(api.ServerConfig{
		Bind:         opts.Bind,
		Port:         opts.Port,
		Store:        l.store,
		Source:       paramFile,
		Describe:     l.schema.Description,
		RequestLimit: opts.RequestLimit,
		Version:      opts.Version,
		GitCommit:    opts.GitCommit,
		BuildTime:    opts.BuildTime,
		GoVersion:    opts.GoVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	p := newPrinter(opts.Out)
	p.plain("Serving %d parameters from %s on %s", l.store.Len(), paramFile, server.Addr())
	p.plain("\nEndpoints:")
	p.plain("  GET  /api/v1/health             - Health check")
	p.plain("  GET  /api/v1/version            - Version information")
	p.plain("  GET  /api/v1/parameters         - List parameters")
	p.plain("  GET  /api/v1/parameters/{name}  - Get one parameter")
	p.plain("  GET  /api/v1/dump               - Plain-text listing")
	p.plain("")

	if err := server.StartWithContext(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	p.plain("Server shutdown complete")
	return nil
}
