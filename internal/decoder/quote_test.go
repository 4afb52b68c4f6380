package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", `''`},
		{"Hi", `'Hi'`},
		{"[31m", `'[31m'`},
		{"\x1b[0m", `'\x1b[0m'`},
		{"a\nb\r\tc", `'a\nb\r\tc'`},
		{"back\\slash", `'back\\slash'`},
		{"it's", `"it's"`},
		{`say "hi"`, `'say "hi"'`},
		{`it's "both"`, `'it\'s "both"'`},
		{"\x00\x07\x7f", `'\x00\x07\x7f'`},
		{"\u0085", `'\x85'`},
		{"\u00a0", `'\xa0'`},
		{"é❯", `'é❯'`},
		{" ", `' '`},
		{"\U000E0001", `'\U000e0001'`},
		{"😀", `'😀'`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "Quote(%q)", tt.in)
	}
}

func TestQuoteASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Hi", `'Hi'`},
		{"e\u0301", `'e\u0301'`},
		{"\u00e9", `'\xe9'`},
		{"\u276f", `'\u276f'`},
		{"\U0001F600", `'\U0001f600'`},
		{"\x1b[m", `'\x1b[m'`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuoteASCII(tt.in), "QuoteASCII(%q)", tt.in)
	}
}

func TestQuoteWith_Mark(t *testing.T) {
	t.Parallel()

	mark := func(s string) string { return "<" + s + ">" }

	tests := []struct {
		name  string
		in    string
		token bool
		want  string
	}{
		{"escape character", "\x1b[0m", false, `'<\x1b>[0m'`},
		{"backslash then x1b", `\x1b`, false, `'\\x1b'`},
		{"token letters left alone", "RESCUE", false, `'RESCUE'`},
		{"token marked on request", "ESC[0mRESCUE", true, `'<ESC>[0mR<ESC>UE'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := QuoteWith(tt.in, QuoteOptions{Mark: mark, MarkToken: tt.token})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnquote_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []string{
		"",
		"Hi",
		"\x1b[31mred\x1b[0m",
		"a\nb\r\tc",
		`back\slash`,
		"it's",
		`it's "both"`,
		"\x00\x7f\u0085\u00a0",
		"e\u0301",
		"\U000E0001\U0001F600",
	}

	for _, s := range samples {
		for _, lit := range []string{Quote(s), QuoteASCII(s)} {
			got, err := Unquote(lit)
			require.NoError(t, err, "Unquote(%s)", lit)
			assert.Equal(t, []rune(s), []rune(got), "Unquote(%s)", lit)
		}
	}
}

func TestUnquote_Errors(t *testing.T) {
	t.Parallel()

	for _, lit := range []string{
		``,
		`'`,
		`abc`,
		`'abc"`,
		`'a'b'`,
		`'a\'`,
		`'\q'`,
		`'\x1'`,
		`'\uzzzz'`,
	} {
		_, err := Unquote(lit)
		assert.Error(t, err, "Unquote(%s)", lit)
	}
}
