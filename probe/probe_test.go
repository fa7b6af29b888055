package probe_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/flexstack/auto-docker/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopWriter struct{}

func (w *noopWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

var logger = slog.New(slog.NewJSONHandler(&noopWriter{}, nil))

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name": "x"}`)
	d := probe.New(dir, logger)

	text, err := d.ReadFile("package.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name": "x"}`, text)

	_, err = d.ReadFile("go.mod")
	assert.ErrorIs(t, err, probe.ErrNotFound)

	assert.True(t, d.Exists("package.json"))
	assert.False(t, d.Exists("go.mod"))
}

func TestFindFiles(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		ignore   string
		expected []string
	}{
		{
			name:     "Sorted across subdirectories",
			files:    []string{"tests/Api.Tests/Api.Tests.csproj", "src/Api/Api.csproj", "Root.csproj", "README.md"},
			expected: []string{"Root.csproj", "src/Api/Api.csproj", "tests/Api.Tests/Api.Tests.csproj"},
		},
		{
			name:     "Skips node_modules and .git",
			files:    []string{"node_modules/pkg/Pkg.csproj", ".git/Hooks.csproj", "App.csproj"},
			expected: []string{"App.csproj"},
		},
		{
			name:     "Honors .dockerignore",
			files:    []string{"samples/Demo/Demo.csproj", "legacy.csproj", "src/Web/Web.csproj"},
			ignore:   "# generated\nsamples\n*.csproj\n",
			expected: []string{"src/Web/Web.csproj"},
		},
		{
			name:     "No matches",
			files:    []string{"main.go"},
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range test.files {
				writeFile(t, dir, f, "")
			}
			if test.ignore != "" {
				writeFile(t, dir, ".dockerignore", test.ignore)
			}

			found, err := probe.New(dir, logger).FindFiles("*.csproj")
			require.NoError(t, err)
			assert.Equal(t, test.expected, found)
		})
	}
}

func TestFindFilesSkipsUnreadableDirectories(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	writeFile(t, dir, "locked/Hidden.csproj", "")
	writeFile(t, dir, "open/Web.csproj", "")

	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	found, err := probe.New(dir, logger).FindFiles("*.csproj")
	require.NoError(t, err)
	assert.Equal(t, []string{"open/Web.csproj"}, found)
}

func TestFindFilesInvalidPattern(t *testing.T) {
	_, err := probe.New(t.TempDir(), logger).FindFiles("[")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	d := probe.New(dir, logger)

	require.NoError(t, d.WriteFile("Dockerfile", "FROM scratch\n"))
	require.NoError(t, d.WriteFile("Dockerfile", "FROM alpine\n"))

	b, err := os.ReadFile(filepath.Join(dir, "Dockerfile"))
	require.NoError(t, err)
	assert.Equal(t, "FROM alpine\n", string(b))

	err = d.WriteFile("missing/Dockerfile", "FROM alpine\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, probe.ErrWrite)

	var writeErr *probe.WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "missing/Dockerfile", writeErr.Name)
}
