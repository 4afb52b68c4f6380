package render

import (
	"fmt"
	"io"

	"github.com/specialistvlad/seqdecode/internal/decoder"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// presentationValue builds the cty object that is marshalled for the JSON
// format. cty normalises strings to NFC, so decoded text never travels as a
// raw cty string: "text" is an ASCII-only quoted literal, which NFC leaves
// untouched, and "text_codepoints" lists its characters exactly.
func presentationValue(p decoder.Presentation, codepoints []int64) cty.Value {
	attrs := map[string]cty.Value{
		"codepoints":      numberList(codepoints),
		"text":            cty.StringVal(decoder.QuoteASCII(p.Text)),
		"text_codepoints": numberList(decoder.Text(p.Text).Codepoints()),
	}

	if p.Split {
		segType := cty.Object(map[string]cty.Type{
			"index":      cty.Number,
			"text":       cty.String,
			"codepoints": cty.List(cty.Number),
		})
		segs := make([]cty.Value, len(p.Segments))
		for i, s := range p.Segments {
			segs[i] = cty.ObjectVal(map[string]cty.Value{
				"index":      cty.NumberIntVal(int64(s.Index)),
				"text":       cty.StringVal(decoder.QuoteASCII(s.Text)),
				"codepoints": numberList(decoder.Text(s.Text).Codepoints()),
			})
		}
		attrs["segments"] = listOrEmpty(segs, segType)
	}

	return cty.ObjectVal(attrs)
}

func numberList(values []int64) cty.Value {
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.NumberIntVal(v)
	}
	return listOrEmpty(vals, cty.Number)
}

func listOrEmpty(vals []cty.Value, ty cty.Type) cty.Value {
	if len(vals) == 0 {
		return cty.ListValEmpty(ty)
	}
	return cty.ListVal(vals)
}

func writeJSON(w io.Writer, p decoder.Presentation, codepoints []int64) error {
	val := presentationValue(p, codepoints)
	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to marshal presentation: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", buf)
	return err
}
