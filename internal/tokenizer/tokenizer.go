package tokenizer

import (
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the field reader.
type Options struct {
	// FieldDelim separates fields within a row. Default: ','
	FieldDelim rune
	// TextDelim quotes fields containing special characters. Default: '"'
	TextDelim rune
}

// DefaultOptions returns default field reader options.
func DefaultOptions() Options {
	return Options{
		FieldDelim: ',',
		TextDelim:  '"',
	}
}

// FieldReader produces one field at a time from a character stream,
// handling quoting, escaped quotes, and embedded delimiters and newlines.
//
// The quoting grammar is a three-state machine:
//
//	Unquoted:    characters accumulate into the field text. A text
//	             delimiter switches to Quoted and resets the accumulator
//	             (a field is either fully quoted or fully unquoted;
//	             opening a quote discards any unquoted prefix). A field
//	             delimiter or newline ends the field.
//	Quoted:      characters accumulate verbatim, including field
//	             delimiters and newlines. A text delimiter switches to
//	             QuotedEscapeCheck.
//	EscapeCheck: a second text delimiter is one literal escaped quote
//	             (back to Quoted); anything else closes the quoted span
//	             and is reconsidered under Unquoted rules.
//
// Characters between a closing text delimiter and the next field
// delimiter, newline, or end of stream are consumed and discarded.
type FieldReader struct {
	stream tokenizer.Stream
	opts   Options
}

// NewFieldReader creates a FieldReader over the given stream with default
// comma and double-quote delimiters.
func NewFieldReader(stream tokenizer.Stream) *FieldReader {
	return NewFieldReaderWithOptions(stream, DefaultOptions())
}

// NewFieldReaderWithOptions creates a FieldReader with custom delimiters.
func NewFieldReaderWithOptions(stream tokenizer.Stream, opts Options) *FieldReader {
	return &FieldReader{
		stream: stream,
		opts:   opts,
	}
}

// Field reader states.
const (
	stateUnquoted = iota
	stateQuoted
	stateEscapeCheck
)

// ReadField reads the next field from the stream and classifies its
// terminator. The returned text never includes the terminator.
//
// Terminator rules:
//   - TermField: the field ended at a field delimiter.
//   - TermRow: the field ended at a newline with more input following.
//   - TermStream: the field ended at end of stream. A newline immediately
//     followed by end of stream also classifies as TermStream, so a
//     trailing newline does not produce a spurious empty row.
func (r *FieldReader) ReadField() (string, Terminator) {
	var text strings.Builder
	state := stateUnquoted

	var halt rune // character that stopped accumulation
	atEOF := false

accumulate:
	for {
		ch, ok := r.next()
		if !ok {
			atEOF = true
			break
		}
		switch state {
		case stateUnquoted:
			switch ch {
			case r.opts.TextDelim:
				text.Reset()
				state = stateQuoted
			case r.opts.FieldDelim, '\n':
				halt = ch
				break accumulate
			default:
				text.WriteRune(ch)
			}
		case stateQuoted:
			if ch == r.opts.TextDelim {
				state = stateEscapeCheck
			} else {
				text.WriteRune(ch)
			}
		case stateEscapeCheck:
			if ch == r.opts.TextDelim {
				text.WriteRune(ch)
				state = stateQuoted
			} else {
				// The quoted span has closed; the field text is sealed.
				halt = ch
				break accumulate
			}
		}
	}

	return text.String(), r.classify(halt, atEOF)
}

// classify determines the terminator code after accumulation halts. halt
// is the character that stopped accumulation; further characters are
// consumed and dropped until a field delimiter, newline, or end of stream
// is reached.
func (r *FieldReader) classify(halt rune, atEOF bool) Terminator {
	ch := halt
	for {
		if atEOF {
			return TermStream
		}
		switch ch {
		case r.opts.FieldDelim:
			return TermField
		case '\n':
			if _, ok := r.stream.PeekChar(); !ok {
				return TermStream
			}
			return TermRow
		}
		next, ok := r.next()
		if !ok {
			atEOF = true
			continue
		}
		ch = next
	}
}

// next consumes and returns the next character from the stream.
func (r *FieldReader) next() (rune, bool) {
	ch, ok := r.stream.PeekChar()
	if !ok {
		return 0, false
	}
	r.stream.NextChar()
	return ch, true
}
