package params

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for use with errors.Is. Each typed error below matches
// exactly one of them.
var (
	ErrDuplicateParameter = errors.New("duplicate parameter")
	ErrFileOpen           = errors.New("cannot open file")
	ErrMalformedLine      = errors.New("malformed line")
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrNoValue            = errors.New("no value")
)

// DuplicateParameterError is returned by Register when the name is already known.
type DuplicateParameterError struct {
	Name string
}

func (e *DuplicateParameterError) Error() string {
	return fmt.Sprintf("parameter %q already exists", e.Name)
}

func (e *DuplicateParameterError) Is(target error) bool {
	return target == ErrDuplicateParameter
}

// FileOpenError is returned when a parameter file cannot be opened.
// Mode is "reading" or "writing".
type FileOpenError struct {
	Path string
	Mode string
	Err  error
}

func (e *FileOpenError) Error() string {
	msg := fmt.Sprintf("could not open file %q for %s", e.Path, e.Mode)
	if e.Err == nil {
		return msg
	}
	// The path is already in msg; keep only the cause of a PathError.
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return msg + ": " + cause.Error()
}

func (e *FileOpenError) Unwrap() error { return e.Err }

func (e *FileOpenError) Is(target error) bool {
	return target == ErrFileOpen
}

// Reasons a line can be rejected.
const (
	ReasonMissingValue = "parameter without value"
	ReasonEmptyValue   = "identifier without value"
)

// MalformedLineError reports the first line of a parameter file that
// could not be parsed. Line is 1-based.
type MalformedLineError struct {
	Source string
	Line   int
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("found %s in line %d of configuration file %q", e.Reason, e.Line, e.Source)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// UnknownParameterError is returned by Get for names that were never registered.
type UnknownParameterError struct {
	Name string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter name: %q", e.Name)
}

func (e *UnknownParameterError) Is(target error) bool {
	return target == ErrUnknownParameter
}

// NoValueError is returned by Get for a registered parameter that was
// neither loaded nor given a default.
type NoValueError struct {
	Name string
}

func (e *NoValueError) Error() string {
	return fmt.Sprintf("no value for parameter %q read and no default value defined", e.Name)
}

func (e *NoValueError) Is(target error) bool {
	return target == ErrNoValue
}
