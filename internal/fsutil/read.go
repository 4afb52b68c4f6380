// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// SourceError reports a recording that could not be opened or read.
type SourceError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot read recording %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying file system error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// ReadRecording reads the whole file at path in one shot. Directories are
// rejected so the caller never sees a partial or meaningless read.
func ReadRecording(path string) ([]byte, error) {
	if path == "" {
		panic("path must not be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &SourceError{Path: path, Err: errors.New("is a directory")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	return data, nil
}

// Exists reports whether a regular file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
