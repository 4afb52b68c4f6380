package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/specialistvlad/seqdecode/internal/decoder"
	"golang.org/x/term"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Highlight modes.
const (
	HighlightAuto   = "auto"
	HighlightAlways = "always"
	HighlightNever  = "never"
)

// Options controls how a Presentation is written.
type Options struct {
	Format    string
	Highlight bool
}

// ShouldHighlight resolves a highlight mode against the destination writer.
// In auto mode only terminals get highlighting.
func ShouldHighlight(mode string, w io.Writer) bool {
	switch mode {
	case HighlightAlways:
		return true
	case HighlightNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Write emits p to w. codepoints are the values the presentation was decoded
// from; they are only used by the JSON format.
func Write(w io.Writer, p decoder.Presentation, codepoints []int64, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, p, codepoints)
	case FormatText, "":
		return writeText(w, p, opts.Highlight)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func writeText(w io.Writer, p decoder.Presentation, highlight bool) error {
	mark := func(s string) string { return s }
	var qopts decoder.QuoteOptions
	if highlight {
		mark = newMarker(w)
		qopts.Mark = mark
		qopts.MarkToken = p.Options.ConvertEscape
	}

	if !p.Split {
		lit := p.Literal
		if highlight {
			lit = decoder.QuoteWith(p.Text, qopts)
		}
		_, err := fmt.Fprintln(w, lit)
		return err
	}

	qopts.MarkToken = false
	for _, seg := range p.Segments {
		if _, err := fmt.Fprintf(w, "N%d %s %s\n", seg.Index, mark(decoder.EscapeToken), decoder.QuoteWith(seg.Text, qopts)); err != nil {
			return err
		}
	}
	return nil
}

// newMarker returns a function that styles escape markers. Colour is forced
// on because the caller already decided highlighting is wanted.
func newMarker(w io.Writer) func(string) string {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	style := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	return func(s string) string {
		return style.Render(s)
	}
}
