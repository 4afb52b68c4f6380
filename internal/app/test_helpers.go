package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/seqdecode/internal/render"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// TestConfig returns a valid Config for path with plain text output.
func TestConfig(path string) Config {
	return Config{
		RecordingPath: path,
		Highlight:     render.HighlightNever,
		OutputFormat:  render.FormatText,
		LogFormat:     "text",
		LogLevel:      "debug",
	}
}

// SetupAppTest writes recording into a temporary file and returns an App
// reading it, along with its stdout and stderr buffers. mutate may adjust
// the config before the App is built.
func SetupAppTest(t *testing.T, recording string, mutate func(*Config)) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultRecordingPath)
	if err := os.WriteFile(path, []byte(recording), 0600); err != nil {
		t.Fatalf("failed to write recording: %v", err)
	}

	cfg := TestConfig(path)
	if mutate != nil {
		mutate(&cfg)
	}
	valid, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuf, errBuf := &SafeBuffer{}, &SafeBuffer{}
	testApp := NewApp(outBuf, errBuf, valid)

	t.Cleanup(func() {
		if os.Getenv("SEQDECODE_TEST_LOGS") == "true" {
			t.Logf("--- Log Output for %s ---\n%s", t.Name(), errBuf.String())
		}
	})

	return testApp, outBuf, errBuf
}
