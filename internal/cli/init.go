package cli

import (
	"fmt"
	"io"
	"os"
)

// InitOptions holds configuration for the init command
type InitOptions struct {
	SchemaPath string
	Force      bool
	Out        io.Writer
}

// InitRun writes a parameter file holding the schema defaults to outPath.
// An existing file is only replaced with Force.
func InitRun(outPath string, opts InitOptions) error {
	_, store, err := loadSchemaStore(opts.SchemaPath)
	if err != nil {
		return err
	}

	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
		}
	}

	if err := store.WriteDefaultFile(outPath); err != nil {
		return err
	}

	written := 0
	for _, p := range store.Snapshot() {
		if p.Set {
			written++
		}
	}
	newPrinter(opts.Out).ok("Wrote %d of %d parameters to %s", written, store.Len(), outPath)
	return nil
}
