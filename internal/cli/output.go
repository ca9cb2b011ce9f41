package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// printer writes status lines, decorating them with emoji only when the
// output is an interactive terminal.
type printer struct {
	out   io.Writer
	fancy bool
}

func newPrinter(out io.Writer) *printer {
	if out == nil {
		out = os.Stdout
	}
	return &printer{out: out, fancy: isTerminal(out)}
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p *printer) status(emoji, plain, format string, args ...any) {
	prefix := plain
	if p.fancy {
		prefix = emoji
	}
	if prefix != "" {
		prefix += " "
	}
	fmt.Fprintf(p.out, prefix+format+"\n", args...)
}

func (p *printer) ok(format string, args ...any)    { p.status("✅", "OK:", format, args...) }
func (p *printer) warn(format string, args ...any)  { p.status("⚠️ ", "WARNING:", format, args...) }
func (p *printer) fail(format string, args ...any)  { p.status("❌", "ERROR:", format, args...) }
func (p *printer) info(format string, args ...any)  { p.status("🔍", "", format, args...) }
func (p *printer) plain(format string, args ...any) { fmt.Fprintf(p.out, format+"\n", args...) }
