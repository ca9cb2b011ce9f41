package cli

import "io"

// GetOptions holds configuration for the get command
type GetOptions struct {
	SchemaPath string
	WithNames  bool
	Out        io.Writer
}

// GetRun loads paramFile and prints the requested values, one per line.
// The first unknown or unset name aborts with an error.
func GetRun(paramFile string, names []string, opts GetOptions) error {
	l, err := loadParamFile(opts.SchemaPath, paramFile)
	if err != nil {
		return err
	}
	l.logUnknown()

	p := newPrinter(opts.Out)
	for _, name := range names {
		value, err := l.store.Get(name)
		if err != nil {
			return err
		}
		if opts.WithNames {
			p.plain("%s=%s", name, value)
		} else {
			p.plain("%s", value)
		}
	}
	return nil
}
