// Package tokenizer reads delimiter-and-quote-escaped tabular text one
// field at a time from a character stream.
package tokenizer

import "fmt"

// Terminator classifies what ended a field.
type Terminator int

const (
	// TermField means the field ended at a field delimiter; another field
	// follows in the same row.
	TermField Terminator = iota
	// TermRow means the field ended at a newline; the next field, if any,
	// starts a new row.
	TermRow
	// TermStream means the field ended at end of stream; no further fields
	// exist.
	TermStream
)

// String returns the string representation of a Terminator.
func (t Terminator) String() string {
	switch t {
	case TermField:
		return "field"
	case TermRow:
		return "row"
	case TermStream:
		return "stream"
	default:
		return fmt.Sprintf("Terminator(%d)", int(t))
	}
}
