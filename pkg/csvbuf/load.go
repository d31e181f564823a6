package csvbuf

import (
	"io"
	"os"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-csvbuf/internal/tokenizer"
)

// Load parses the named file into the buffer using the configured
// delimiters, appending after any rows already present. The file handle
// is closed before Load returns, on every path.
//
// Errors are wrapped in *LoadError; a missing file satisfies
// errors.Is(err, fs.ErrNotExist).
func (b *Buffer) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	if err := b.load(shapetokenizer.NewStreamFromReader(f)); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// LoadReader parses CSV text from an io.Reader into the buffer,
// appending after any rows already present.
func (b *Buffer) LoadReader(r io.Reader) error {
	return b.load(shapetokenizer.NewStreamFromReader(r))
}

// LoadString parses CSV text from a string into the buffer, appending
// after any rows already present.
//
// Example:
//
//	buf := csvbuf.New()
//	_ = buf.LoadString("a,b,c\n1,2,3")
//	// buf.Height() == 2, buf.Width(0) == 3
func (b *Buffer) LoadString(input string) error {
	return b.load(shapetokenizer.NewStream(input))
}

// load drives the field reader across the whole stream, growing the
// buffer one field or row at a time.
//
// Parsing writes text into an already-existing cell while the terminator
// decides what slot to create next, so the first iteration creates the
// opening row/field pair without parsing, and each later iteration parses
// into the slot created by the previous one.
//
// Empty input still takes one trip through the loop and yields a single
// row holding one empty field.
func (b *Buffer) load(stream shapetokenizer.Stream) error {
	reader := tokenizer.NewFieldReaderWithOptions(stream, tokenizer.Options{
		FieldDelim: b.fieldDelim,
		TextDelim:  b.textDelim,
	})

	next := tokenizer.TermRow // the first field always opens a new row
	first := true
	row, entry := 0, 0
	for {
		if !first {
			text, term := reader.ReadField()
			b.rows[row][entry] = text
			next = term
		}

		switch next {
		case tokenizer.TermStream:
			return nil
		case tokenizer.TermRow:
			b.appendRow()
			row, entry = len(b.rows)-1, 0
		case tokenizer.TermField:
			if err := b.appendField(row); err != nil {
				return err
			}
			entry = len(b.rows[row]) - 1
		}

		first = false
	}
}
