// Package csvbuf provides an in-memory, mutable, ragged two-dimensional
// text buffer backed by a delimiter-and-quote-escaped tabular text format.
//
// A Buffer holds an ordered sequence of rows, each an ordered sequence of
// text fields. Rows are ragged: widths may differ arbitrarily. Cells are
// addressed by zero-based row and entry indices and can be read, written,
// inserted, and removed without reparsing the whole dataset.
//
// # Loading and saving
//
// Buffers are populated from CSV-like text and serialized back to it:
//
//	buf := csvbuf.New()
//	if err := buf.Load("data.csv"); err != nil {
//	    // handle error
//	}
//	buf.SetField(1, 2, "updated")
//	if err := buf.Save("data.csv"); err != nil {
//	    // handle error
//	}
//
// A field containing the field delimiter, the text delimiter, or a newline
// is saved wrapped in the text delimiter, with internal text delimiters
// doubled. Loading inverts the same grammar, so save and load round-trip
// cell-for-cell.
//
// # Absent cells
//
// Reads of cells past the buffer's bounds are not errors: they report an
// empty cell and yield zero-filled output. Writes to absent cells grow the
// buffer until the target exists. Size queries return 0 for any
// out-of-range index.
//
// # Concurrency
//
// A Buffer is exclusively owned by its creator. Methods are not safe for
// concurrent use; callers needing shared access must provide their own
// synchronization.
package csvbuf

// Buffer is a ragged table of text fields plus its delimiter
// configuration.
//
// Invariant: every existing row has at least one field. The minimal row is
// a single empty field; mutation never produces a zero-field row.
//
// The zero value is not usable; construct with New or NewWithOptions.
type Buffer struct {
	rows       [][]string
	fieldDelim rune
	textDelim  rune
}

// New creates an empty Buffer with the default comma field delimiter and
// double-quote text delimiter.
func New() *Buffer {
	return &Buffer{
		rows:       make([][]string, 0),
		fieldDelim: ',',
		textDelim:  '"',
	}
}

// NewWithOptions creates an empty Buffer with custom delimiters.
// Returns an error if the options are invalid.
//
// Example:
//
//	buf, err := csvbuf.NewWithOptions(csvbuf.Options{
//	    FieldDelim: '\t',
//	    TextDelim:  '"',
//	})
func NewWithOptions(opts Options) (*Buffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Buffer{
		rows:       make([][]string, 0),
		fieldDelim: opts.FieldDelim,
		textDelim:  opts.TextDelim,
	}, nil
}

// Height returns the number of rows in the buffer.
func (b *Buffer) Height() int {
	return len(b.rows)
}

// Width returns the number of fields in the given row, or 0 if the row
// does not exist.
func (b *Buffer) Width(row int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return len(b.rows[row])
}

// FieldLength returns the length in bytes of the cell's text, or 0 if the
// cell does not exist.
func (b *Buffer) FieldLength(row, entry int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	if entry < 0 || entry >= len(b.rows[row]) {
		return 0
	}
	return len(b.rows[row][entry])
}

// FieldDelim returns the configured field delimiter.
func (b *Buffer) FieldDelim() rune {
	return b.fieldDelim
}

// TextDelim returns the configured text delimiter.
func (b *Buffer) TextDelim() rune {
	return b.textDelim
}

// SetFieldDelim reconfigures the character separating fields within a row.
// It affects subsequent Load and Save calls, not buffer content.
func (b *Buffer) SetFieldDelim(delim rune) {
	b.fieldDelim = delim
}

// SetTextDelim reconfigures the character used to quote fields containing
// special characters. It affects subsequent Load and Save calls, not
// buffer content.
func (b *Buffer) SetTextDelim(delim rune) {
	b.textDelim = delim
}

// Reset removes every row, leaving an empty buffer with its delimiter
// configuration intact.
func (b *Buffer) Reset() {
	b.rows = b.rows[:0]
}
