// Package style converts canonical lower_snake identifiers into the casing
// conventions of the target languages, and can infer which convention (plus
// literal prefix) produced a concrete example token.
package style

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiter separates words in a canonical identifier.
const Delimiter = "_"

// Style is a pure token-to-token casing transform.
type Style func(string) string

func firstUpper(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

// CamelUpper capitalizes every word and drops the delimiter: foo_bar -> FooBar.
func CamelUpper(tok string) string {
	words := strings.Split(tok, Delimiter)
	for i, w := range words {
		words[i] = firstUpper(w)
	}
	return strings.Join(words, "")
}

// CamelLower capitalizes every word but the first and drops the delimiter:
// foo_bar -> fooBar.
func CamelLower(tok string) string {
	words := strings.Split(tok, Delimiter)
	for i, w := range words {
		if i > 0 {
			words[i] = firstUpper(w)
		}
	}
	return strings.Join(words, "")
}

// Identity leaves the token unchanged: foo_bar -> foo_bar.
func Identity(tok string) string { return tok }

// UnderscoreCap capitalizes every word and keeps the delimiter:
// foo_bar -> Foo_Bar.
func UnderscoreCap(tok string) string {
	words := strings.Split(tok, Delimiter)
	for i, w := range words {
		words[i] = firstUpper(w)
	}
	return strings.Join(words, Delimiter)
}

// AllCaps upper-cases the whole token, delimiter kept: foo_bar -> FOO_BAR.
func AllCaps(tok string) string { return strings.ToUpper(tok) }

// WithPrefix prepends a literal prefix to the output of a base style.
func WithPrefix(prefix string, base Style) Style {
	if prefix == "" {
		return base
	}
	return func(tok string) string { return prefix + base(tok) }
}

// probes pairs each built-in style with that style applied to the canonical
// probe token foo_bar. Infer tests them in this exact order; the order is a
// contract, since degenerate examples can match more than one probe.
var probes = []struct {
	suffix string
	style  Style
}{
	{"FooBar", CamelUpper},
	{"fooBar", CamelLower},
	{"foo_bar", Identity},
	{"Foo_Bar", UnderscoreCap},
	{"FOO_BAR", AllCaps},
}

// Infer matches an example token such as "FooBar" or "XFooBar" against the
// built-in styles and returns the matched style, wrapped with any leading
// literal prefix. The second result is false when no style matches.
func Infer(example string) (Style, bool) {
	for _, p := range probes {
		if strings.HasSuffix(example, p.suffix) {
			prefix := example[:len(example)-len(p.suffix)]
			return WithPrefix(prefix, p.style), true
		}
	}
	return nil, false
}
