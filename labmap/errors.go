package labmap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("labmap: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("labmap: all rows must have the same length")
	// ErrNoStart indicates no '^' tile was found.
	ErrNoStart = errors.New("labmap: map has no start tile")
	// ErrMultipleStarts indicates more than one '^' tile was found.
	ErrMultipleStarts = errors.New("labmap: map has more than one start tile")
	// ErrOutOfBounds indicates a position outside the map.
	ErrOutOfBounds = errors.New("labmap: position out of bounds")
	// ErrNotOpen indicates an obstacle was requested on a non-Open tile.
	ErrNotOpen = errors.New("labmap: tile is not open")
)

// MalformedGridError reports why an input could not be turned into a LabMap.
// Line is the 1-based input line at fault, or 0 when the whole map is at fault.
type MalformedGridError struct {
	Line int
	Err  error
}

func (e *MalformedGridError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed map at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed map: %v", e.Err)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *MalformedGridError) Unwrap() error { return e.Err }

func malformed(line int, err error) error {
	return &MalformedGridError{Line: line, Err: err}
}
