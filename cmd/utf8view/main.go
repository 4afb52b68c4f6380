// Command utf8view reads a recorded list of byte values and prints the
// longest prefix of it that decodes as UTF-8, reporting every rejected
// attempt on the way.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/seqdecode/internal/fsutil"
	"github.com/specialistvlad/seqdecode/internal/sequence"
	"github.com/specialistvlad/seqdecode/internal/utf8trim"
)

const defaultPath = "sequence.bin"

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

func run(outW, errW io.Writer, args []string) int {
	if len(args) > 1 {
		fmt.Fprintln(errW, "Usage: utf8view [FILE]")
		return 2
	}
	path := defaultPath
	if len(args) == 1 {
		path = args[0]
	}

	src, err := fsutil.ReadRecording(path)
	if err != nil {
		fmt.Fprintln(errW, err)
		return 1
	}
	seq, err := sequence.Parse(path, src)
	if err != nil {
		fmt.Fprintln(errW, err)
		return 1
	}
	buf, err := utf8trim.BytesFromCodepoints(seq)
	if err != nil {
		fmt.Fprintln(errW, err)
		return 1
	}

	valid := utf8trim.LongestValidPrefix(buf, func(n int) {
		fmt.Fprintf(outW, "Invalid utf8 string (%d bytes)\n", n)
	})
	fmt.Fprintln(outW, string(valid))
	return 0
}
