// Package probe reads and writes project files relative to a root directory.
package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/moby/patternmatcher"
	"github.com/moby/patternmatcher/ignorefile"
)

// Reader is the read side of a project tree.
type Reader interface {
	// Returns the whole file as text. Fails with ErrNotFound when absent.
	ReadFile(name string) (string, error)
	// Returns true if the named regular file exists.
	Exists(name string) bool
	// Returns root-relative paths of files whose base name matches pattern, sorted.
	FindFiles(pattern string) ([]string, error)
}

// Writer is the write side of a project tree.
type Writer interface {
	// Writes content to the named file, replacing any existing file.
	WriteFile(name string, content string) error
}

// Returned by ReadFile when the file does not exist.
var ErrNotFound = errors.New("file not found")

// Matched by errors.Is for every *WriteError.
var ErrWrite = errors.New("write failed")

// WriteError reports a failed artifact write.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Name, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWrite, e.Err}
}

// Directories never descended by FindFiles.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Dir is a Reader and Writer rooted at a directory on disk.
type Dir struct {
	Root string
	Log  *slog.Logger
}

// Creates a Dir rooted at root. If no logger is provided, logs are discarded.
func New(root string, log ...*slog.Logger) *Dir {
	logger := slog.New(slog.DiscardHandler)
	if len(log) > 0 && log[0] != nil {
		logger = log[0]
	}

	return &Dir{Root: root, Log: logger}
}

func (d *Dir) ReadFile(name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(d.Root, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", name, err)
	}

	return string(b), nil
}

func (d *Dir) Exists(name string) bool {
	stat, err := os.Stat(filepath.Join(d.Root, filepath.FromSlash(name)))
	return err == nil && !stat.IsDir()
}

func (d *Dir) FindFiles(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q", pattern)
	}

	matcher, err := d.ignoreMatcher()
	if err != nil {
		d.Log.Warn("Ignoring unreadable .dockerignore", "error", err)
		matcher = nil
	}

	var found []string
	err = filepath.WalkDir(d.Root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			if p == d.Root {
				return err
			}
			d.Log.Warn("Skipping unreadable path", "path", p, "error", err)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(d.Root, p)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if skipDirs[entry.Name()] {
				return filepath.SkipDir
			}
			if matcher != nil {
				if ignored, err := matcher.MatchesOrParentMatches(rel); err == nil && ignored {
					d.Log.Debug("Skipping ignored directory", "path", rel)
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		if ok, _ := doublestar.Match(pattern, entry.Name()); !ok {
			return nil
		}

		if matcher != nil {
			if ignored, err := matcher.MatchesOrParentMatches(rel); err == nil && ignored {
				return nil
			}
		}

		found = append(found, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", d.Root, err)
	}

	sort.Strings(found)
	return found, nil
}

func (d *Dir) WriteFile(name string, content string) error {
	if err := os.WriteFile(filepath.Join(d.Root, filepath.FromSlash(name)), []byte(content), 0644); err != nil {
		return &WriteError{Name: name, Err: err}
	}

	d.Log.Debug("Wrote " + name)
	return nil
}

// Builds a matcher from the project's .dockerignore. Returns nil when there is none.
func (d *Dir) ignoreMatcher() (*patternmatcher.PatternMatcher, error) {
	raw, err := d.ReadFile(".dockerignore")
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	patterns, err := ignorefile.ReadAll(strings.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return nil, nil
	}

	return patternmatcher.New(patterns)
}
