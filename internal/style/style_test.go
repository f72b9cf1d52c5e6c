package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamelUpper(t *testing.T) {
	// Test: Each word is capitalized and the delimiter dropped
	assert.Equal(t, "FooBar", CamelUpper("foo_bar"))
	assert.Equal(t, "Foo", CamelUpper("foo"))
	assert.Equal(t, "", CamelUpper(""))
}

func TestCamelLower(t *testing.T) {
	// Test: The first word keeps its case, the rest are capitalized
	assert.Equal(t, "fooBar", CamelLower("foo_bar"))
	assert.Equal(t, "foo", CamelLower("foo"))
	assert.Equal(t, "", CamelLower(""))
}

func TestUnderscoreCap(t *testing.T) {
	// Test: Words are capitalized but the delimiter stays
	assert.Equal(t, "Foo_Bar", UnderscoreCap("foo_bar"))
	assert.Equal(t, "Foo", UnderscoreCap("foo"))
}

func TestAllCaps(t *testing.T) {
	// Test: The whole token is upper-cased, delimiter kept
	assert.Equal(t, "FOO_BAR", AllCaps("foo_bar"))
}

func TestIdentity(t *testing.T) {
	// Test: The token passes through unchanged
	assert.Equal(t, "foo_bar", Identity("foo_bar"))
}

func TestWordBoundariesPreserved(t *testing.T) {
	// Test: Splitting UnderscoreCap output on the delimiter, or re-deriving
	// word starts from CamelUpper capitalization, reproduces the original
	// word sequence
	inputs := []string{"foo", "foo_bar", "a_b_c", "http_request_id"}
	for _, in := range inputs {
		words := strings.Split(in, Delimiter)

		capped := strings.Split(UnderscoreCap(in), Delimiter)
		require.Len(t, capped, len(words))
		for i, w := range capped {
			assert.Equal(t, strings.ToLower(w), words[i])
		}

		camel := CamelUpper(in)
		var derived []string
		start := 0
		for i := 1; i < len(camel); i++ {
			if camel[i] >= 'A' && camel[i] <= 'Z' {
				derived = append(derived, camel[start:i])
				start = i
			}
		}
		derived = append(derived, camel[start:])
		require.Len(t, derived, len(words))
		for i, w := range derived {
			assert.Equal(t, strings.ToLower(w), words[i])
		}
	}
}

func TestWithPrefix(t *testing.T) {
	// Test: A literal prefix is prepended to the base style's output
	st := WithPrefix("DB", CamelUpper)
	assert.Equal(t, "DBFooBar", st("foo_bar"))

	// Empty prefix returns the base style untouched
	st = WithPrefix("", AllCaps)
	assert.Equal(t, "FOO_BAR", st("foo_bar"))
}

func TestInferPlainStyles(t *testing.T) {
	// Test: Each built-in style is recovered from its own probe output
	cases := []struct {
		example string
		want    Style
	}{
		{"FooBar", CamelUpper},
		{"fooBar", CamelLower},
		{"foo_bar", Identity},
		{"Foo_Bar", UnderscoreCap},
		{"FOO_BAR", AllCaps},
	}
	for _, tc := range cases {
		inferred, ok := Infer(tc.example)
		require.True(t, ok, "example %q", tc.example)
		for _, token := range []string{"user_name", "x", "a_b_c"} {
			assert.Equal(t, tc.want(token), inferred(token), "example %q token %q", tc.example, token)
		}
	}
}

func TestInferWithPrefix(t *testing.T) {
	// Test: A leading remainder becomes a literal prefix on the matched style
	inferred, ok := Infer("XFooBar")
	require.True(t, ok)
	assert.Equal(t, "XUserName", inferred("user_name"))

	inferred, ok = Infer("m_fooBar")
	require.True(t, ok)
	assert.Equal(t, "m_userName", inferred("user_name"))
}

func TestInferNoMatch(t *testing.T) {
	// Test: Examples matching no probe fail inference
	_, ok := Infer("fOO-bAR")
	assert.False(t, ok)
}

func TestInferMatchesFreshInputsLikeOriginal(t *testing.T) {
	// Test: Infer(CamelUpper("foo_bar")) behaves exactly like CamelUpper
	inferred, ok := Infer(CamelUpper("foo_bar"))
	require.True(t, ok)
	for _, token := range []string{"record_type", "id", "a_b"} {
		assert.Equal(t, CamelUpper(token), inferred(token))
	}
}
