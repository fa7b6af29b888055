package stack

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/flexstack/auto-docker/probe"
	"github.com/pelletier/go-toml"
)

// Detector classifies a project tree. Detection never fails: unreadable or
// malformed manifests count as absent.
type Detector struct {
	Log *slog.Logger
}

// Detects the stack of the project readable through r.
func (d *Detector) Detect(ctx context.Context, r probe.Reader) Profile {
	profile := EmptyProfile()

	m, err := LoadManifests(ctx, r, d.Log)
	if err != nil {
		d.Log.Warn("Stack detection interrupted", "error", err)
		return profile
	}

	return d.Classify(m)
}

// Classifies already loaded manifests.
func (d *Detector) Classify(m Manifests) Profile {
	profile := EmptyProfile()

	if rule, ev := matchFrontend(m); ev.Matched {
		profile.FrontendKind = rule.Kind
		profile.FrontendPort = rule.Port
		d.Log.Info(fmt.Sprintf("Detected %s frontend via %q in %s", rule.Kind, ev.Marker, ev.Source))
	} else {
		d.logMiss("Frontend", ev)
	}

	rule, evidence := matchBackend(m)
	for _, ev := range evidence {
		if !ev.Matched {
			d.logMiss("Backend", ev)
		}
	}
	if rule.Kind != "" {
		ev := evidence[len(evidence)-1]
		profile.BackendKind = rule.Kind
		profile.BackendPort = rule.Port
		profile.BinaryName = d.binaryName(rule.Kind, m)
		d.Log.Info(fmt.Sprintf("Detected %s backend via %q in %s", rule.Kind, ev.Marker, m[ev.Source].Path))
	}

	if kind, ev := matchDatabase(m); ev.Matched {
		profile.DatabaseKind = kind
		d.Log.Info(fmt.Sprintf("Detected %s database via %q in %s", kind, ev.Marker, ev.Source))
	} else {
		d.Log.Debug("Database dependency not detected")
	}

	return profile
}

func (d *Detector) logMiss(axis string, ev Evidence) {
	if ev.Err != nil {
		d.Log.Debug(axis+" source unusable", "source", string(ev.Source), "error", ev.Err)
		return
	}
	d.Log.Debug(axis+" not detected", "source", string(ev.Source))
}

// Finds the name of the build output a compiled backend runs.
func (d *Detector) binaryName(kind BackendKind, m Manifests) string {
	switch kind {
	case BackendRust:
		name, err := cargoBinaryName(m[SourceCargoTOML].Text)
		if err != nil {
			d.Log.Warn("Failed to decode Cargo.toml", "error", err)
			return DefaultBinaryName
		}
		if name == "" {
			return DefaultBinaryName
		}
		d.Log.Info("Detected binary name: " + name)
		return name

	case BackendDotNet:
		base := path.Base(m[SourceCsproj].Path)
		return strings.TrimSuffix(base, path.Ext(base))
	}

	return DefaultBinaryName
}

// Returns the first [[bin]] name, else the [package] name.
func cargoBinaryName(text string) (string, error) {
	var cargo struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
		Bin []struct {
			Name string `toml:"name"`
		} `toml:"bin"`
	}

	if err := toml.Unmarshal([]byte(text), &cargo); err != nil {
		return "", err
	}

	for _, b := range cargo.Bin {
		if b.Name != "" {
			return b.Name, nil
		}
	}
	return cargo.Package.Name, nil
}
