// Command gensample writes synthetic test data: random lines of printable
// ASCII, or the same text encoded as a codepoint recording.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/specialistvlad/seqdecode/internal/sample"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
	os.Exit(run(os.Stderr, os.Args[1:]))
}

func run(errW io.Writer, args []string) int {
	flagSet := flag.NewFlagSet("gensample", flag.ContinueOnError)
	flagSet.SetOutput(errW)

	lines := flagSet.Int("lines", 0, "Number of lines to generate (required).")
	outPath := flagSet.String("out", "", "Output file (default \"<lines>_lines.txt\").")
	seed := flagSet.Int64("seed", 0, "Random seed. 0 picks one from the clock.")
	asSequence := flagSet.Bool("as-sequence", false, "Write the text as an integer-list recording.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	linesSet := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "lines" {
			linesSet = true
		}
	})
	if !linesSet || *lines < 0 {
		fmt.Fprintln(errW, "Usage: gensample -lines N [-out FILE] [-seed S] [-as-sequence]")
		return 2
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	path := *outPath
	if path == "" {
		path = sample.DefaultFileName(*lines)
	}

	if err := generate(path, *lines, *seed, *asSequence); err != nil {
		fmt.Fprintln(errW, err)
		return 1
	}
	slog.Info("Sample written.", "path", path, "lines", *lines, "seed", *seed, "as_sequence", *asSequence)
	return 0
}

func generate(path string, lines int, seed int64, asSequence bool) error {
	var buf bytes.Buffer
	if err := sample.WriteLines(&buf, rand.New(rand.NewSource(seed)), lines); err != nil {
		return err
	}

	data := buf.Bytes()
	if asSequence {
		data = []byte(sample.EncodeSequence(buf.String()) + "\n")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sample %s: %w", path, err)
	}
	return nil
}
