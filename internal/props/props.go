// Package props converts between string maps and the Java ".properties"
// text format.
//
// Encoding is implemented here and is deliberately small: sorted keys, one
// key=value line per entry, control characters in values escaped. Decoding
// delegates the full properties grammar (comments, continuation lines,
// unicode escapes) to github.com/magiconair/properties.
package props

import (
	"sort"
	"strings"

	"github.com/magiconair/properties"

	wberrors "workbench.dev/workbench/internal/errors"
)

// valueEscaper rewrites the characters that the properties format cannot
// carry verbatim inside a value. Keys are not escaped: a key containing a
// separator ('=', ':', or whitespace), a newline, or a leading comment
// marker ('#' or '!') will not survive a decode. That is a caller error,
// not something we silently sanitize.
var valueEscaper = strings.NewReplacer(
	"\\", `\\`,
	"\t", `\t`,
	"\r", `\r`,
	"\n", `\n`,
	"\f", `\f`,
)

// Encode renders m as properties text with keys in ascending order.
// One key=value line per entry, joined with a single newline and no
// trailing newline. An empty map encodes to the empty string.
//
// Round-trip fidelity holds only for keys free of separators ('=', ':',
// whitespace), newlines, and leading comment markers ('#', '!');
// see valueEscaper.
func Encode(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(valueEscaper.Replace(m[k]))
	}
	return b.String()
}

// Decode parses properties text into a string map. Parsing follows the
// full Java properties grammar as implemented by the magiconair/properties
// library, including comments, escape sequences, and continuation lines.
// Duplicate keys resolve last-write-wins.
//
// Malformed input returns a *errors.ParseError wrapping the parser's
// diagnostic; errors.Is(err, errors.ErrMalformedProperties) matches it.
func Decode(text string) (map[string]string, error) {
	// Values are taken literally; ${ref} expansion is a feature of the
	// library, not of the properties format. Expansion must be off before
	// loading, or the load-time circular-reference check rejects values
	// like "a=${a}" that are perfectly valid properties text.
	p := properties.NewProperties()
	p.DisableExpansion = true
	if err := p.Load([]byte(text), properties.UTF8); err != nil {
		return nil, wberrors.NewParseError(err)
	}

	m := make(map[string]string, p.Len())
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		m[k] = v
	}
	return m, nil
}
