package props

import (
	"testing"

	"github.com/stretchr/testify/require"

	wberrors "workbench.dev/workbench/internal/errors"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    map[string]string
		expected string
	}{
		{
			name:     "empty map encodes to empty string",
			input:    map[string]string{},
			expected: "",
		},
		{
			name:     "nil map encodes to empty string",
			input:    nil,
			expected: "",
		},
		{
			name:     "single pair",
			input:    map[string]string{"key": "value"},
			expected: "key=value",
		},
		{
			name:     "keys are sorted ascending",
			input:    map[string]string{"b": "2", "a": "1", "c": "3"},
			expected: "a=1\nb=2\nc=3",
		},
		{
			name:     "newline and tab in value are escaped",
			input:    map[string]string{"k": "line1\nline2\tend"},
			expected: `k=line1\nline2\tend`,
		},
		{
			name:     "carriage return and form feed are escaped",
			input:    map[string]string{"k": "a\rb\fc"},
			expected: `k=a\rb\fc`,
		},
		{
			name:     "backslash is doubled",
			input:    map[string]string{"k": `C:\temp`},
			expected: `k=C:\\temp`,
		},
		{
			name:     "empty value produces bare key=",
			input:    map[string]string{"k": ""},
			expected: "k=",
		},
		{
			name:     "equals sign in value passes through",
			input:    map[string]string{"k": "a=b"},
			expected: "k=a=b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Encode(tt.input))
		})
	}
}

func TestEncodeNoTrailingNewline(t *testing.T) {
	t.Parallel()

	out := Encode(map[string]string{"a": "1", "b": "2"})
	require.Equal(t, "a=1\nb=2", out)
	require.NotContains(t, out[len(out)-1:], "\n")
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "empty text decodes to empty map",
			input:    "",
			expected: map[string]string{},
		},
		{
			name:     "simple pairs",
			input:    "a=1\nb=2",
			expected: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:     "duplicate keys resolve last-write-wins",
			input:    "a=1\na=2",
			expected: map[string]string{"a": "2"},
		},
		{
			name:     "hash comments are skipped",
			input:    "# header\na=1",
			expected: map[string]string{"a": "1"},
		},
		{
			name:     "bang comments are skipped",
			input:    "! header\na=1",
			expected: map[string]string{"a": "1"},
		},
		{
			name:     "escape sequences are expanded",
			input:    `k=line1\nline2\tend`,
			expected: map[string]string{"k": "line1\nline2\tend"},
		},
		{
			name:     "continuation lines are joined",
			input:    "k=one \\\n    two",
			expected: map[string]string{"k": "one two"},
		},
		{
			name:     "unicode escapes are decoded",
			input:    `k=\u00e9`,
			expected: map[string]string{"k": "é"},
		},
		{
			name:     "dollar references are taken literally",
			input:    "a=1\nb=${a}",
			expected: map[string]string{"a": "1", "b": "${a}"},
		},
		{
			name:     "self-referential value is taken literally",
			input:    "a=${a}",
			expected: map[string]string{"a": "${a}"},
		},
		{
			name:     "mutually referential values are taken literally",
			input:    "a=${b}\nb=${a}",
			expected: map[string]string{"a": "${b}", "b": "${a}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := Decode(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, m)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	_, err := Decode(`k=\u12x4`)
	require.Error(t, err)
	require.ErrorIs(t, err, wberrors.ErrMalformedProperties)

	var parseErr *wberrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Error(t, parseErr.Err)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input map[string]string
	}{
		{
			name:  "plain values",
			input: map[string]string{"a": "1", "b": "2", "zebra": "stripes"},
		},
		{
			name:  "values with control characters",
			input: map[string]string{"multi": "one\ntwo\tthree", "path": `C:\Users\build`},
		},
		{
			name:  "empty values",
			input: map[string]string{"empty": "", "full": "x"},
		},
		{
			name:  "values containing equals and spaces",
			input: map[string]string{"url": "https://example.com?a=1&b=2", "msg": "hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			decoded, err := Decode(Encode(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.input, decoded)
		})
	}
}
