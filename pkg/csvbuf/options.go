package csvbuf

import "unicode/utf8"

// Options configures a Buffer's delimiters.
type Options struct {
	// FieldDelim separates fields within a row.
	// It must be a valid rune and not \r, \n, or the Unicode replacement
	// character (0xFFFD).
	// Default: ','
	FieldDelim rune

	// TextDelim wraps a field containing the field delimiter, the text
	// delimiter, or a newline; internal occurrences are escaped by
	// doubling. Same validity rules as FieldDelim, and it must differ
	// from FieldDelim.
	// Default: '"'
	TextDelim rune
}

// DefaultOptions returns the default delimiter configuration.
func DefaultOptions() Options {
	return Options{
		FieldDelim: ',',
		TextDelim:  '"',
	}
}

// validDelim reports whether r is usable as a delimiter.
func validDelim(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks if the options are valid.
// Returns an error if the options are invalid.
func (o Options) Validate() error {
	if !validDelim(o.FieldDelim) {
		return &OptionsError{Field: "FieldDelim", Message: "invalid delimiter"}
	}
	if !validDelim(o.TextDelim) {
		return &OptionsError{Field: "TextDelim", Message: "invalid delimiter"}
	}
	if o.FieldDelim == o.TextDelim {
		return &OptionsError{Field: "TextDelim", Message: "text delimiter same as field delimiter"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csvbuf: invalid " + e.Field + ": " + e.Message
}
