// Package decoder maps recorded codepoints to characters and shapes the
// result into a Presentation: either one quoted literal or a numbered list of
// segments split on the escape marker.
//
// Every function in this package is pure; concurrent use on independent
// inputs needs no synchronisation.
package decoder

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// EscapeToken is the literal marker ESC characters are rewritten to, and the
// delimiter used when splitting into commands.
const EscapeToken = "ESC"

// Escape is the escape introducer codepoint.
const Escape rune = ansi.ESC

// Text is the decoded character sequence. It has exactly one rune per input
// codepoint.
type Text []rune

// Codepoints extracts the integer value of every character, in order.
func (t Text) Codepoints() []int64 {
	out := make([]int64, len(t))
	for i, r := range t {
		out[i] = int64(r)
	}
	return out
}

// String returns the text as a Go string.
func (t Text) String() string {
	return string(t)
}

// DecodeError reports a codepoint that is not a Unicode scalar value.
type DecodeError struct {
	Index int
	Value int64
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("codepoint %d (0x%X) at position %d is not a valid Unicode scalar value", e.Value, e.Value, e.Index)
}

// Decode converts each codepoint into its character. It fails on the first
// value outside 0..0x10FFFF or inside the surrogate range.
func Decode(codepoints []int64) (Text, error) {
	text := make(Text, len(codepoints))
	for i, v := range codepoints {
		if v < 0 || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
			return nil, &DecodeError{Index: i, Value: v}
		}
		text[i] = rune(v)
	}
	return text, nil
}

// Options selects how decoded text is presented. The zero value yields a
// single quoted literal with ESC characters left untouched.
type Options struct {
	ConvertEscape bool
	SplitCommands bool
}

// Segment is one piece of text between escape markers.
type Segment struct {
	Index int
	Text  string
}

// Presentation is the formatted result of a decode. When Split is false only
// Literal is meaningful; otherwise Segments holds at least one entry.
// Options records the switches it was produced with.
type Presentation struct {
	Split    bool
	Text     string
	Literal  string
	Segments []Segment
	Options  Options
}

// Format applies opts to text.
func Format(text Text, opts Options) Presentation {
	s := text.String()
	if opts.ConvertEscape {
		s = strings.ReplaceAll(s, string(Escape), EscapeToken)
	}

	if !opts.SplitCommands {
		return Presentation{Text: s, Literal: Quote(s), Options: opts}
	}

	parts := strings.Split(s, EscapeToken)
	segments := make([]Segment, len(parts))
	for i, part := range parts {
		segments[i] = Segment{Index: i, Text: part}
	}
	return Presentation{Split: true, Text: s, Segments: segments, Options: opts}
}

// Run decodes codepoints and formats the result.
func Run(codepoints []int64, opts Options) (Presentation, error) {
	text, err := Decode(codepoints)
	if err != nil {
		return Presentation{}, err
	}
	return Format(text, opts), nil
}
