package params

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxLineLength is the longest physical line Load accepts.
const MaxLineLength = 1 << 20

// LoadFromFile reads parameter values from the file at path.
func (s *Store) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileOpenError{Path: path, Mode: "reading", Err: err}
	}
	defer f.Close()

	return s.Load(f, path)
}

// Load reads parameter values from r. source names the input in errors
// and notifications.
//
// Lines are processed in order and applied immediately. The first
// malformed line stops the load; values set by earlier lines are kept.
func (s *Store) Load(r io.Reader, source string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)
	scanner.Split(scanRawLines)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := s.parseLine(scanner.Text(), lineNo, source); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s after line %d: %w", source, lineNo, err)
	}
	return nil
}

// parseLine applies a single line. Blank and comment-only lines are no-ops.
func (s *Store) parseLine(line string, lineNo int, source string) error {
	content := stripComment(line, s.commentPrefix)
	if trimSpaces(content) == "" {
		return nil
	}

	rawName, rawValue, found := strings.Cut(content, " ")
	if !found {
		return &MalformedLineError{Source: source, Line: lineNo, Reason: ReasonMissingValue}
	}

	name := trimSpaces(rawName)
	value := trimSpaces(rawValue)
	if value == "" {
		return &MalformedLineError{Source: source, Line: lineNo, Reason: ReasonEmptyValue}
	}

	e, ok := s.entries[name]
	if !ok {
		if s.onUnknown != nil {
			s.onUnknown(UnknownParameter{Name: name, Line: lineNo, Source: source})
		}
		return nil
	}
	e.value = value
	e.set = true
	return nil
}

// stripComment truncates line at the first occurrence of prefix.
func stripComment(line, prefix string) string {
	if i := strings.Index(line, prefix); i >= 0 {
		return line[:i]
	}
	return line
}

// trimSpaces removes leading and trailing ' ' characters. Tabs and other
// whitespace are part of the value.
func trimSpaces(s string) string {
	return strings.Trim(s, " ")
}

// scanRawLines is a bufio.SplitFunc that splits on '\n' only. Unlike
// bufio.ScanLines it leaves a trailing '\r' in place.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
