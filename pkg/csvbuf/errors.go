package csvbuf

import (
	"errors"
	"fmt"
)

// ErrNoSuchRow indicates an operation referenced a row that does not
// exist in the buffer.
var ErrNoSuchRow = errors.New("csvbuf: row does not exist")

// Status reports the outcome of copying a cell into caller-supplied
// storage. Absent cells are not errors for reads; they are classified as
// empty, matching the buffer's "absent means empty" semantics.
type Status int

const (
	// StatusOK means the whole cell text was copied.
	StatusOK Status = iota
	// StatusTruncated means the cell text was longer than the destination
	// and was cut to fit.
	StatusTruncated
	// StatusEmptyCell means the requested cell does not exist; the
	// destination was filled with zero bytes.
	StatusEmptyCell
	// StatusZeroCapacity means the destination had zero capacity and
	// nothing was copied.
	StatusZeroCapacity
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTruncated:
		return "truncated"
	case StatusEmptyCell:
		return "empty cell"
	case StatusZeroCapacity:
		return "zero capacity"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// LoadError reports a failure to load a file into a buffer.
type LoadError struct {
	// Path is the file that failed to load.
	Path string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message naming the file.
func (e *LoadError) Error() string {
	return fmt.Sprintf("csvbuf: load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// SaveError reports a failure to serialize a buffer to a file.
type SaveError struct {
	// Path is the file that failed to save.
	Path string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message naming the file.
func (e *SaveError) Error() string {
	return fmt.Sprintf("csvbuf: save %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SaveError) Unwrap() error {
	return e.Err
}
