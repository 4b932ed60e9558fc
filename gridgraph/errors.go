package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrStartCount indicates the start marker does not occur exactly once.
	ErrStartCount = errors.New("gridgraph: grid must contain exactly one start marker")
	// ErrStartResolved indicates a second attempt to rewrite the start cell.
	ErrStartResolved = errors.New("gridgraph: start cell already resolved")
)

// ParseError reports a diagram that could not be loaded. Line is the
// zero-based input row at fault, or -1 when the problem is not tied to a row.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("parse error: %v", e.Err)
	}

	return fmt.Sprintf("parse error at line %d: %v", e.Line+1, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(line int, err error) error {
	return &ParseError{Line: line, Err: err}
}
