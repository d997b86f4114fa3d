package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is matched by every *FormatError
	ErrFormat = errors.New("maze format error")
	// ErrOutOfBounds is returned when a cell position lies outside the grid
	ErrOutOfBounds = errors.New("cell position out of bounds")
)

// FormatError describes a structural violation in the maze text.
// Line is the 1-based line number in the source, or 0 when the error
// concerns the input as a whole.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrFormat, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
}

// Is lets errors.Is(err, ErrFormat) match any FormatError
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErrorf(line int, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// ReadError is returned when the maze source cannot be read
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read maze %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
