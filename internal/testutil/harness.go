// Package testutil holds shared helpers for tests that run the application
// end to end against files on disk.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles creates a temporary directory holding the given files, keyed by
// path relative to that directory, and returns the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

// WriteFile writes a single file into a fresh temporary directory and returns
// its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	return filepath.Join(WriteFiles(t, map[string]string{name: content}), name)
}

// IsolateEnv clears the given environment variables for the duration of the
// test and returns the path of an empty dotenv file, so option defaults do
// not depend on the developer's shell or working directory. Tests calling it
// must not be parallel.
func IsolateEnv(t *testing.T, keys ...string) string {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return WriteFile(t, "empty.env", "")
}
