package tokenizer

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// fieldResult is one ReadField outcome.
type fieldResult struct {
	text string
	term Terminator
}

// readAll drains the reader until end of stream.
func readAll(r *FieldReader) []fieldResult {
	var results []fieldResult
	for {
		text, term := r.ReadField()
		results = append(results, fieldResult{text, term})
		if term == TermStream {
			return results
		}
	}
}

func TestReadField_Terminators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []fieldResult
	}{
		{
			name:  "empty input",
			input: "",
			expected: []fieldResult{
				{"", TermStream},
			},
		},
		{
			name:  "single field",
			input: "abc",
			expected: []fieldResult{
				{"abc", TermStream},
			},
		},
		{
			name:  "fields in one row",
			input: "a,b,c",
			expected: []fieldResult{
				{"a", TermField},
				{"b", TermField},
				{"c", TermStream},
			},
		},
		{
			name:  "two rows",
			input: "a,b\nc",
			expected: []fieldResult{
				{"a", TermField},
				{"b", TermRow},
				{"c", TermStream},
			},
		},
		{
			name:  "trailing newline absorbed",
			input: "a,b\n",
			expected: []fieldResult{
				{"a", TermField},
				{"b", TermStream},
			},
		},
		{
			name:  "blank line before end of stream",
			input: "a\n\n",
			expected: []fieldResult{
				{"a", TermRow},
				{"", TermStream},
			},
		},
		{
			name:  "consecutive delimiters are empty fields",
			input: "a,,b",
			expected: []fieldResult{
				{"a", TermField},
				{"", TermField},
				{"b", TermStream},
			},
		},
		{
			name:  "delimiter before newline is trailing empty field",
			input: "a,\nb",
			expected: []fieldResult{
				{"a", TermField},
				{"", TermRow},
				{"b", TermStream},
			},
		},
		{
			name:  "carriage return is ordinary data",
			input: "a\r\nb",
			expected: []fieldResult{
				{"a\r", TermRow},
				{"b", TermStream},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFieldReader(tokenizer.NewStream(tt.input))
			got := readAll(r)
			assertFields(t, got, tt.expected)
		})
	}
}

func TestReadField_Quoting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []fieldResult
	}{
		{
			name:  "quoted field",
			input: `"hello"`,
			expected: []fieldResult{
				{"hello", TermStream},
			},
		},
		{
			name:  "empty quoted field",
			input: `""`,
			expected: []fieldResult{
				{"", TermStream},
			},
		},
		{
			name:  "embedded field delimiter",
			input: `"a,b",c`,
			expected: []fieldResult{
				{"a,b", TermField},
				{"c", TermStream},
			},
		},
		{
			name:  "embedded newline",
			input: "\"multi\nline\",x",
			expected: []fieldResult{
				{"multi\nline", TermField},
				{"x", TermStream},
			},
		},
		{
			name:  "escaped quotes",
			input: `"He said ""hi"""`,
			expected: []fieldResult{
				{`He said "hi"`, TermStream},
			},
		},
		{
			name:  "field of one literal quote",
			input: `""""`,
			expected: []fieldResult{
				{`"`, TermStream},
			},
		},
		{
			name:  "characters after closing quote are dropped",
			input: `"q"junk,next`,
			expected: []fieldResult{
				{"q", TermField},
				{"next", TermStream},
			},
		},
		{
			name:  "newline after dropped characters",
			input: "\"q\"junk\nnext",
			expected: []fieldResult{
				{"q", TermRow},
				{"next", TermStream},
			},
		},
		{
			name:  "quote mid-field discards unquoted prefix",
			input: `ab"cd",e`,
			expected: []fieldResult{
				{"cd", TermField},
				{"e", TermStream},
			},
		},
		{
			name:  "unclosed quote runs to end of stream",
			input: `"abc`,
			expected: []fieldResult{
				{"abc", TermStream},
			},
		},
		{
			name:  "end of stream during escape check",
			input: `"abc"`,
			expected: []fieldResult{
				{"abc", TermStream},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFieldReader(tokenizer.NewStream(tt.input))
			got := readAll(r)
			assertFields(t, got, tt.expected)
		})
	}
}

func TestReadField_CustomDelimiters(t *testing.T) {
	opts := Options{FieldDelim: ';', TextDelim: '\''}
	input := "a;'b;c';'it''s'\nd"
	r := NewFieldReaderWithOptions(tokenizer.NewStream(input), opts)

	expected := []fieldResult{
		{"a", TermField},
		{"b;c", TermField},
		{"it's", TermRow},
		{"d", TermStream},
	}
	assertFields(t, readAll(r), expected)
}

func TestReadField_DefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.FieldDelim != ',' {
		t.Errorf("FieldDelim = %q, want ','", opts.FieldDelim)
	}
	if opts.TextDelim != '"' {
		t.Errorf("TextDelim = %q, want '\"'", opts.TextDelim)
	}
}

func TestTerminator_String(t *testing.T) {
	tests := []struct {
		term Terminator
		want string
	}{
		{TermField, "field"},
		{TermRow, "row"},
		{TermStream, "stream"},
		{Terminator(42), "Terminator(42)"},
	}
	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("Terminator(%d).String() = %q, want %q", int(tt.term), got, tt.want)
		}
	}
}

func assertFields(t *testing.T, got, want []fieldResult) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d fields %v, want %d fields %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].text != want[i].text {
			t.Errorf("field %d text = %q, want %q", i, got[i].text, want[i].text)
		}
		if got[i].term != want[i].term {
			t.Errorf("field %d terminator = %v, want %v", i, got[i].term, want[i].term)
		}
	}
}
