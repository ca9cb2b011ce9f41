package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DumpOptions holds configuration for the dump command
type DumpOptions struct {
	SchemaPath string
	JSON       bool
	Out        io.Writer
}

// DumpRun loads paramFile and writes every parameter to the output, either
// as the plain listing or as JSON.
func DumpRun(paramFile string, opts DumpOptions) error {
	l, err := loadParamFile(opts.SchemaPath, paramFile)
	if err != nil {
		return err
	}
	l.logUnknown()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if opts.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(l.store.Snapshot()); err != nil {
			return fmt.Errorf("failed to encode parameters: %w", err)
		}
		return nil
	}

	return l.store.Dump(out)
}
