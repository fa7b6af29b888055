package stack_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

type noopWriter struct{}

func (w *noopWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

var logger = slog.New(slog.NewJSONHandler(&noopWriter{}, nil))

// Creates a project tree in a temporary directory from name -> content pairs.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}
