// Package sample generates synthetic test data: random lines of printable
// ASCII text, optionally encoded as a codepoint recording.
package sample

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// Limits of the generated data.
const (
	MinChar    = 32
	MaxChar    = 126
	MaxLineLen = 100
)

// Line returns one random line of 0..MaxLineLen printable ASCII characters.
func Line(rng *rand.Rand) string {
	n := rng.Intn(MaxLineLen + 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(MinChar + rng.Intn(MaxChar-MinChar+1))
	}
	return string(b)
}

// WriteLines writes n newline-terminated random lines to w.
func WriteLines(w io.Writer, rng *rand.Rand, n int) error {
	if n < 0 {
		return fmt.Errorf("line count must not be negative, got %d", n)
	}
	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		if _, err := bw.WriteString(Line(rng) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeSequence renders text as an integer-list recording, one codepoint per
// character, e.g. "Hi" becomes "[72, 105]".
func EncodeSequence(text string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for _, r := range text {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.FormatInt(int64(r), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

// DefaultFileName mirrors the naming used by earlier tooling.
func DefaultFileName(lines int) string {
	return fmt.Sprintf("%d_lines.txt", lines)
}
