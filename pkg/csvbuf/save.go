package csvbuf

import (
	"bytes"
	"io"
	"os"
	"strings"
)

// Save serializes the buffer to the named file using the configured
// delimiters, overwriting it if it exists. The file handle is closed
// before Save returns, on every path.
//
// Errors are wrapped in *SaveError.
func (b *Buffer) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := b.Write(f); err != nil {
		f.Close()
		return &SaveError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// Write serializes the buffer to w.
//
// A field containing the text delimiter, the field delimiter, or a
// newline is wrapped in the text delimiter with internal text delimiters
// doubled; otherwise its text is written verbatim. Fields are separated
// by the field delimiter and rows by a newline, with no trailing newline
// after the final row. Output is fully determined by buffer content and
// delimiter configuration.
func (b *Buffer) Write(w io.Writer) error {
	var out bytes.Buffer
	for i, row := range b.rows {
		if i > 0 {
			out.WriteByte('\n')
		}
		for j, text := range row {
			if j > 0 {
				out.WriteRune(b.fieldDelim)
			}
			writeField(&out, text, b.fieldDelim, b.textDelim)
		}
	}
	_, err := w.Write(out.Bytes())
	return err
}

// Render serializes the buffer and returns the bytes.
func (b *Buffer) Render() []byte {
	var out bytes.Buffer
	b.Write(&out)
	return out.Bytes()
}

// String renders the buffer as it would be saved.
func (b *Buffer) String() string {
	return string(b.Render())
}

// writeField writes one field with proper escaping.
func writeField(out *bytes.Buffer, text string, fieldDelim, textDelim rune) {
	needsQuoting := strings.ContainsRune(text, fieldDelim) ||
		strings.ContainsRune(text, textDelim) ||
		strings.ContainsRune(text, '\n')
	if !needsQuoting {
		out.WriteString(text)
		return
	}

	out.WriteRune(textDelim)
	for _, ch := range text {
		if ch == textDelim {
			out.WriteRune(textDelim)
		}
		out.WriteRune(ch)
	}
	out.WriteRune(textDelim)
}
