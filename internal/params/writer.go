package params

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DefaultFileHeader follows the comment prefix on the first line of a
// generated parameter file.
const DefaultFileHeader = "Default config file generated by ParameterParser"

// WriteDefaultFile writes every parameter that holds a value to path,
// replacing any existing file. The file is written to a temporary file
// and renamed into place, so readers never see a partial file. A symlink
// at path is followed and its target is replaced. An existing file that
// cannot be opened for writing is left alone.
func (s *Store) WriteDefaultFile(path string) error {
	target, err := writeTarget(path)
	if err != nil {
		return &FileOpenError{Path: path, Mode: "writing", Err: err}
	}

	pending, err := renameio.NewPendingFile(target,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return &FileOpenError{Path: path, Mode: "writing", Err: err}
	}
	// No-op once CloseAtomicallyReplace succeeded.
	defer pending.Cleanup()

	if err := s.WriteDefaults(pending); err != nil {
		return fmt.Errorf("failed to write parameter file %s: %w", path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return &FileOpenError{Path: path, Mode: "writing", Err: err}
	}
	return nil
}

// writeTarget resolves the file WriteDefaultFile replaces. Paths that do
// not exist yet are returned unchanged.
func writeTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(resolved, os.O_WRONLY, 0)
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return resolved, nil
}

// WriteDefaults writes the content of WriteDefaultFile to w.
func (s *Store) WriteDefaults(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s\n", s.commentPrefix, DefaultFileHeader)
	for _, p := range s.Snapshot() {
		if !p.Set {
			continue
		}
		fmt.Fprintf(bw, "%s %s\n", p.Name, p.Value)
	}
	return bw.Flush()
}

// Dump writes a human-readable listing of every parameter to w, including
// parameters without a value.
func (s *Store) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Current parameters:")
	for _, p := range s.Snapshot() {
		if p.Set {
			fmt.Fprintf(bw, "%s = %s\n", p.Name, p.Value)
		} else {
			fmt.Fprintf(bw, "%s <no value set>\n", p.Name)
		}
	}
	return bw.Flush()
}
