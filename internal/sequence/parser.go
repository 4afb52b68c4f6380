package sequence

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// Sequence is an ordered list of integer codepoints as they appeared in the
// recording.
type Sequence []int64

// state tracks what the parser may accept next.
type state int

const (
	stateStart      state = iota // after the opening bracket or at the beginning
	stateAfterValue              // after an integer
	stateAfterComma              // after a separator
)

type parser struct {
	filename string
	src      []byte
	pos      hcl.Pos
}

// Parse reads src as an integer-list literal. filename is only used to label
// error ranges and may be empty.
func Parse(filename string, src []byte) (Sequence, error) {
	p := &parser{
		filename: filename,
		src:      src,
		pos:      hcl.Pos{Line: 1, Column: 1, Byte: 0},
	}
	return p.parse()
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (Sequence, error) {
	return Parse("", []byte(s))
}

func (p *parser) parse() (Sequence, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorAt(p.pos, p.pos, "", "input is empty, expected a list of integers")
	}

	bracketed := false
	var open hcl.Pos
	if p.peek() == '[' {
		open = p.pos
		p.advance()
		bracketed = true
	}

	seq := Sequence{}
	st := stateStart
	for {
		p.skipSpace()
		if p.eof() {
			if bracketed {
				return nil, p.errorAt(open, p.rangeEndOf(open), "[", "unclosed '[', expected ']' before end of input")
			}
			if st == stateStart {
				return nil, p.errorAt(p.pos, p.pos, "", "expected an integer before end of input")
			}
			return seq, nil
		}

		r := p.peek()
		switch {
		case r == ']':
			if !bracketed {
				start := p.pos
				p.advance()
				return nil, p.errorAt(start, p.pos, "]", "unexpected ']' without a matching '['")
			}
			p.advance()
			p.skipSpace()
			if !p.eof() {
				start := p.pos
				tok := p.scanWord()
				return nil, p.errorAt(start, p.pos, tok, "unexpected content after closing ']'")
			}
			return seq, nil

		case r == ',':
			if st != stateAfterValue {
				start := p.pos
				p.advance()
				return nil, p.errorAt(start, p.pos, ",", "expected an integer, found ','")
			}
			p.advance()
			st = stateAfterComma

		case r == '-' || isDigit(r):
			start := p.pos
			if st == stateAfterValue {
				tok := p.scanWord()
				return nil, p.errorAt(start, p.pos, tok, "missing ',' between list elements")
			}
			v, err := p.parseInt()
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
			st = stateAfterValue

		case r == '[':
			start := p.pos
			p.advance()
			return nil, p.errorAt(start, p.pos, "[", "nested lists are not allowed")

		default:
			start := p.pos
			tok := p.scanWord()
			return nil, p.errorAt(start, p.pos, tok, "only integers, commas and brackets are allowed")
		}
	}
}

// parseInt consumes an optionally signed run of decimal digits. The token must
// be followed by whitespace, a delimiter or the end of input.
func (p *parser) parseInt() (int64, error) {
	start := p.pos
	from := p.pos.Byte
	if p.peek() == '-' {
		p.advance()
	}
	digits := 0
	for !p.eof() && isDigit(p.peek()) {
		p.advance()
		digits++
	}
	if digits == 0 || (!p.eof() && !isDelimiter(p.peek())) {
		p.skipWord()
		tok := string(p.src[from:p.pos.Byte])
		return 0, p.errorAt(start, p.pos, tok, "invalid integer literal")
	}

	tok := string(p.src[from:p.pos.Byte])
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		msg := "invalid integer literal"
		if errors.Is(err, strconv.ErrRange) {
			msg = "integer does not fit in 64 bits"
		}
		pe := p.errorAt(start, p.pos, tok, msg)
		pe.Err = err
		return 0, pe
	}
	return v, nil
}

// scanWord consumes everything up to the next delimiter and returns it. It
// always consumes at least one rune so error tokens are never empty.
func (p *parser) scanWord() string {
	from := p.pos.Byte
	p.advance()
	p.skipWord()
	return string(p.src[from:p.pos.Byte])
}

func (p *parser) skipWord() {
	for !p.eof() && !isDelimiter(p.peek()) {
		p.advance()
	}
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.peek()) {
		p.advance()
	}
}

func (p *parser) eof() bool {
	return p.pos.Byte >= len(p.src)
}

func (p *parser) peek() rune {
	r, _ := utf8.DecodeRune(p.src[p.pos.Byte:])
	return r
}

func (p *parser) advance() {
	r, size := utf8.DecodeRune(p.src[p.pos.Byte:])
	p.pos.Byte += size
	if r == '\n' {
		p.pos.Line++
		p.pos.Column = 1
		return
	}
	p.pos.Column++
}

// rangeEndOf returns the position one rune after start.
func (p *parser) rangeEndOf(start hcl.Pos) hcl.Pos {
	_, size := utf8.DecodeRune(p.src[start.Byte:])
	return hcl.Pos{Line: start.Line, Column: start.Column + 1, Byte: start.Byte + size}
}

func (p *parser) errorAt(start, end hcl.Pos, tok, msg string) *ParseError {
	return &ParseError{
		Range: hcl.Range{
			Filename: p.filename,
			Start:    start,
			End:      end,
		},
		Token:   tok,
		Message: msg,
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func isDelimiter(r rune) bool {
	return isSpace(r) || r == ',' || r == '[' || r == ']'
}
