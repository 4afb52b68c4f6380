package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecording(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sequence.bin")
	require.NoError(t, os.WriteFile(path, []byte("[72, 105]"), 0600))

	data, err := ReadRecording(path)
	require.NoError(t, err)
	assert.Equal(t, "[72, 105]", string(data))
	assert.True(t, Exists(path))
}

func TestReadRecording_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.bin")
	_, err := ReadRecording(path)
	require.Error(t, err)

	var se *SourceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, path, se.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), path)
	assert.False(t, Exists(path))
}

func TestReadRecording_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := ReadRecording(dir)
	var se *SourceError
	require.ErrorAs(t, err, &se)
	assert.False(t, Exists(dir))
}

func TestReadRecording_EmptyPathPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { _, _ = ReadRecording("") })
}
