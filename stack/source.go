package stack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/flexstack/auto-docker/probe"
	"golang.org/x/sync/errgroup"
)

// SourceID names one of the manifests detection reads.
type SourceID string

const (
	SourcePackageJSON  SourceID = "package.json"
	SourceRequirements SourceID = "requirements.txt"
	SourcePomXML       SourceID = "pom.xml"
	SourceGoMod        SourceID = "go.mod"
	SourceComposerJSON SourceID = "composer.json"
	SourceCsproj       SourceID = "*.csproj"
	SourceCargoTOML    SourceID = "Cargo.toml"
)

var allSources = []SourceID{
	SourcePackageJSON,
	SourceRequirements,
	SourcePomXML,
	SourceGoMod,
	SourceComposerJSON,
	SourceCsproj,
	SourceCargoTOML,
}

type matchMode int

const (
	// Marker must be a dependency key.
	matchKeys matchMode = iota
	// Marker must be a substring of some requirement line.
	matchLines
	// Marker must be a substring of the raw text.
	matchText
)

// Source is one manifest as read during a single detection run.
type Source struct {
	ID      SourceID
	Path    string
	Present bool
	Text    string
	// Read or parse failure. A missing file is not an error.
	Err error

	mode  matchMode
	keys  map[string]bool
	lines []string
}

// Returns the first marker found in the source.
func (s *Source) find(markers []string) (string, bool) {
	for _, m := range markers {
		switch s.mode {
		case matchKeys:
			if s.keys[m] {
				return m, true
			}
		case matchLines:
			for _, line := range s.lines {
				if strings.Contains(line, m) {
					return m, true
				}
			}
		case matchText:
			if strings.Contains(s.Text, m) {
				return m, true
			}
		}
	}

	return "", false
}

// Evidence is the outcome of checking one source against a marker list.
type Evidence struct {
	Source  SourceID
	Matched bool
	Marker  string
	// Set when the source could not be read or parsed.
	Err error
}

func check(s *Source, markers []string) Evidence {
	ev := Evidence{Source: s.ID}
	if !s.Present {
		return ev
	}
	if s.Err != nil {
		ev.Err = s.Err
		return ev
	}

	ev.Marker, ev.Matched = s.find(markers)
	return ev
}

// Manifests holds every source read for one detection run.
type Manifests map[SourceID]*Source

// Checks one source against a marker list. A source that was never loaded counts as absent.
func (m Manifests) Check(id SourceID, markers ...string) Evidence {
	s, ok := m[id]
	if !ok || s == nil {
		return Evidence{Source: id}
	}
	return check(s, markers)
}

// Reads all manifests concurrently. Per-source failures are recorded on the source.
func LoadManifests(ctx context.Context, r probe.Reader, log *slog.Logger) (Manifests, error) {
	loaded := make([]*Source, len(allSources))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range allSources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			loaded[i] = loadSource(r, id, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := make(Manifests, len(loaded))
	for _, s := range loaded {
		m[s.ID] = s
	}
	return m, nil
}

func loadSource(r probe.Reader, id SourceID, log *slog.Logger) *Source {
	s := &Source{ID: id, Path: string(id)}

	if id == SourceCsproj {
		paths, err := r.FindFiles(string(id))
		if err != nil {
			s.Present = true
			s.Err = err
			return s
		}
		if len(paths) == 0 {
			return s
		}
		if len(paths) > 1 {
			log.Debug(fmt.Sprintf("Found %d project files, inspecting %s", len(paths), paths[0]))
		}
		s.Path = paths[0]
	}

	text, err := r.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, probe.ErrNotFound) {
			s.Present = true
			s.Err = err
			log.Debug("Failed to read "+s.Path, "error", err)
		}
		return s
	}

	s.Present = true
	s.Text = text

	switch id {
	case SourcePackageJSON:
		s.mode = matchKeys
		s.keys, s.Err = dependencyKeys([]byte(text), "dependencies", "devDependencies")
	case SourceComposerJSON:
		s.mode = matchKeys
		s.keys, s.Err = dependencyKeys([]byte(text), "require", "require-dev")
	case SourceRequirements:
		s.mode = matchLines
		s.lines = requirementLines(text)
	default:
		s.mode = matchText
	}

	if s.Err != nil {
		log.Debug("Failed to parse "+s.Path, "error", s.Err)
	}

	return s
}

// Merges the keys of the given top-level objects of a JSON manifest.
func dependencyKeys(raw []byte, sections ...string) (map[string]bool, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	keys := map[string]bool{}
	for _, section := range sections {
		v, ok := doc[section]
		if !ok {
			continue
		}

		// composer writes an empty section as []
		if trimmed := bytes.TrimSpace(v); len(trimmed) > 0 && trimmed[0] == '[' {
			continue
		}

		var deps map[string]json.RawMessage
		if err := json.Unmarshal(v, &deps); err != nil {
			return nil, fmt.Errorf("%s: %w", section, err)
		}
		for name := range deps {
			keys[name] = true
		}
	}

	return keys, nil
}

// Splits a requirements file into lowercased requirement lines, dropping blanks and comments.
func requirementLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.ToLower(line))
	}

	return lines
}
