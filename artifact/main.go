// Package artifact renders container artifacts for a detected stack.
package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/flexstack/auto-docker/stack"
)

const (
	Dockerfile        = "Dockerfile"
	BackendDockerfile = "Dockerfile.backend"
	NginxConf         = "nginx.conf"
	ComposeFile       = "docker-compose.yml"
)

// Canonical file order, also the write order.
var fileOrder = []string{Dockerfile, BackendDockerfile, NginxConf, ComposeFile}

// Set maps an artifact file name to its full content.
type Set map[string]string

// Returns the names in the set in canonical order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, name := range fileOrder {
		if _, ok := s[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Returned when neither a frontend nor a backend was detected.
var ErrUnsupportedStack = errors.New("No supported project type detected")

// Returned when the backend kind has no Dockerfile template.
var ErrUnsupportedBackend = errors.New("Unsupported backend type")

// Returned when a rendered artifact does not parse.
var ErrMalformedArtifact = errors.New("Generated artifact is malformed")

// Synthesizer renders the artifact set for a profile. It holds no state between calls.
type Synthesizer struct {
	Log *slog.Logger
}

// Renders every artifact for the profile. Either the whole set is returned or an error.
func (s *Synthesizer) Synthesize(p stack.Profile) (Set, error) {
	if !p.HasFrontend() && !p.HasBackend() {
		return nil, ErrUnsupportedStack
	}

	set := Set{}

	if p.HasFrontend() {
		set[Dockerfile] = frontendTemplate
		set[NginxConf] = nginxTemplate
	}

	if p.HasBackend() {
		contents, err := GenerateBackendDockerfile(p)
		if err != nil {
			return nil, err
		}

		if p.HasFrontend() {
			set[BackendDockerfile] = contents
		} else {
			set[Dockerfile] = contents
		}
	}

	if p.HasFrontend() && p.HasBackend() {
		compose, err := Compose(p)
		if err != nil {
			return nil, err
		}
		set[ComposeFile] = compose
	}

	s.Log.Info(fmt.Sprintf("Synthesized %d artifacts for %s", len(set), describe(p)))
	return set, nil
}

func describe(p stack.Profile) string {
	switch {
	case p.HasFrontend() && p.HasBackend():
		return fmt.Sprintf("full-stack %s + %s project", p.FrontendKind, p.BackendKind)
	case p.HasFrontend():
		return fmt.Sprintf("%s frontend project", p.FrontendKind)
	default:
		return fmt.Sprintf("%s backend project", p.BackendKind)
	}
}

func render(name string, text string, data any) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("Failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("Failed to execute %s template: %w", name, err)
	}

	return buf.String(), nil
}
