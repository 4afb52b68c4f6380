package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/seqdecode/internal/decoder"
	"github.com/specialistvlad/seqdecode/internal/sequence"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	errOut := &bytes.Buffer{}

	code := run(errOut, []string{"-lines=5", "-seed=3", "-out=" + path})
	require.Equal(t, 0, code, errOut.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 5, strings.Count(string(data), "\n"))
}

func TestRun_AsSequenceDecodesToText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	textPath := filepath.Join(dir, "text.txt")
	seqPath := filepath.Join(dir, "seq.bin")

	require.Equal(t, 0, run(&bytes.Buffer{}, []string{"-lines=3", "-seed=9", "-out=" + textPath}))
	require.Equal(t, 0, run(&bytes.Buffer{}, []string{"-lines=3", "-seed=9", "-as-sequence", "-out=" + seqPath}))

	text, err := os.ReadFile(textPath)
	require.NoError(t, err)
	src, err := os.ReadFile(seqPath)
	require.NoError(t, err)

	seq, err := sequence.Parse(seqPath, src)
	require.NoError(t, err)
	decoded, err := decoder.Decode(seq)
	require.NoError(t, err)
	require.Equal(t, string(text), decoded.String())
}

func TestRun_RequiresLines(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}
	require.Equal(t, 2, run(errOut, nil))
	require.Contains(t, errOut.String(), "Usage:")
}

func TestRun_ZeroLinesWritesEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	errOut := &bytes.Buffer{}

	code := run(errOut, []string{"-lines=0", "-out=" + path})
	require.Equal(t, 0, code, errOut.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestRun_RejectsNegativeLines(t *testing.T) {
	t.Parallel()

	errOut := &bytes.Buffer{}
	require.Equal(t, 2, run(errOut, []string{"-lines=-1"}))
	require.Contains(t, errOut.String(), "Usage:")
}
