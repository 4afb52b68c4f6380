package decoder

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// QuoteOptions adjusts Quote.
type QuoteOptions struct {
	// ASCII escapes every non-ASCII character, printable or not, so the
	// result survives any Unicode normalisation unchanged.
	ASCII bool

	// Mark, if set, wraps the escape written for each ESC character.
	Mark func(string) string

	// MarkToken also passes each EscapeToken occurrence through Mark.
	MarkToken bool
}

// Quote renders s as a quoted literal in which every non-printable character
// is shown as a visible escape. Single quotes are used unless s contains a
// single quote and no double quote. Printable non-ASCII characters are kept
// as they are.
func Quote(s string) string {
	return QuoteWith(s, QuoteOptions{})
}

// QuoteASCII is Quote with every non-ASCII character escaped.
func QuoteASCII(s string) string {
	return QuoteWith(s, QuoteOptions{ASCII: true})
}

// QuoteWith is Quote with options. Marking happens while the literal is
// built, so only real ESC characters and tokens are ever marked.
func QuoteWith(s string, opts QuoteOptions) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteRune(quote)
	for i := 0; i < len(s); {
		if opts.Mark != nil && opts.MarkToken && strings.HasPrefix(s[i:], EscapeToken) {
			sb.WriteString(opts.Mark(EscapeToken))
			i += len(EscapeToken)
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == Escape && opts.Mark != nil:
			sb.WriteString(opts.Mark(`\x1b`))
		case r == quote || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r <= ansi.US || r == ansi.DEL:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < utf8.RuneSelf:
			sb.WriteRune(r)
		case !opts.ASCII && unicode.IsPrint(r):
			sb.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
	}
	sb.WriteRune(quote)
	return sb.String()
}

// Unquote reverses Quote, QuoteASCII and QuoteWith without marking.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", fmt.Errorf("literal %q is too short", lit)
	}
	quote := lit[0]
	if (quote != '\'' && quote != '"') || lit[len(lit)-1] != quote {
		return "", fmt.Errorf("literal %q is not quoted", lit)
	}
	body := lit[1 : len(lit)-1]

	var sb strings.Builder
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(body[i:])
			if r == rune(quote) {
				return "", fmt.Errorf("unescaped quote at offset %d", i+1)
			}
			sb.WriteRune(r)
			i += size
			continue
		}
		if i+1 >= len(body) {
			return "", fmt.Errorf("dangling backslash at offset %d", i+1)
		}

		esc := body[i+1]
		width := 0
		switch esc {
		case '\\', '\'', '"':
			sb.WriteByte(esc)
			i += 2
			continue
		case 't':
			sb.WriteByte('\t')
			i += 2
			continue
		case 'n':
			sb.WriteByte('\n')
			i += 2
			continue
		case 'r':
			sb.WriteByte('\r')
			i += 2
			continue
		case 'x':
			width = 2
		case 'u':
			width = 4
		case 'U':
			width = 8
		default:
			return "", fmt.Errorf("unknown escape \\%c at offset %d", esc, i+1)
		}

		if i+2+width > len(body) {
			return "", fmt.Errorf("truncated escape at offset %d", i+1)
		}
		v, err := strconv.ParseUint(body[i+2:i+2+width], 16, 32)
		if err != nil {
			return "", fmt.Errorf("invalid hex escape at offset %d: %w", i+1, err)
		}
		sb.WriteRune(rune(v))
		i += 2 + width
	}
	return sb.String(), nil
}
