package cli

import (
	"io"
	"os"

	"github.com/nauticalab/paramfile/internal/schema"
)

// SchemaOptions holds configuration for the schema command
type SchemaOptions struct {
	SchemaPath string
	Out        io.Writer
}

// SchemaRun prints the normalized schema. With a parameter file, the
// file's values become the defaults, which turns a tuned parameter file
// into a new schema.
func SchemaRun(paramFile string, opts SchemaOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if paramFile == "" {
		s, _, err := loadSchemaStore(opts.SchemaPath)
		if err != nil {
			return err
		}
		return s.Write(out)
	}

	l, err := loadParamFile(opts.SchemaPath, paramFile)
	if err != nil {
		return err
	}
	l.logUnknown()

	updated := schema.FromStore(l.store)
	for i := range updated.Parameters {
		updated.Parameters[i].Description = l.schema.Description(updated.Parameters[i].Name)
	}
	return updated.Write(out)
}
