package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRecording(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sequence.bin")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600), "failed to set up test file")
	return path
}

func TestRun_Literal(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeRecording(t, "[72, 105]")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	code := run(out, errOut, []string{"--recording-path=" + path, "--highlight=never"})

	// --- Assert ---
	require.Equal(t, 0, code, errOut.String())
	require.Equal(t, "'Hi'\n", out.String())
}

func TestRun_SplitCommands(t *testing.T) {
	t.Parallel()

	path := writeRecording(t, "[27, 91, 51, 49, 109]")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(out, errOut, []string{"--recording-path=" + path, "--convert-escape", "--split-commands", "--highlight=never"})

	require.Equal(t, 0, code, errOut.String())
	require.Equal(t, "N0 ESC ''\nN1 ESC '[31m'\n", out.String())
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "sequence.bin")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(out, errOut, []string{missing})

	require.NotEqual(t, 0, code)
	require.Empty(t, out.String(), "no partial output may be printed")
	require.Contains(t, errOut.String(), missing)
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	path := writeRecording(t, "not a list")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(out, errOut, []string{path})

	require.Equal(t, 1, code)
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "failed to parse recording")
}

func TestRun_DecodeError(t *testing.T) {
	t.Parallel()

	path := writeRecording(t, "[1114112]")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(out, errOut, []string{path})

	require.Equal(t, 1, code)
	require.Empty(t, out.String())
	require.Contains(t, errOut.String(), "1114112")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(out, errOut, []string{"-h"})

	require.Equal(t, 0, code)
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed to the error stream")
}

func TestRun_FlagError(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	code := run(out, errOut, []string{"--this-is-not-a-valid-flag"})

	require.Equal(t, 2, code)
	require.Contains(t, errOut.String(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
