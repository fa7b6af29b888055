package artifact

import (
	"fmt"
	"strings"

	"github.com/flexstack/auto-docker/stack"
	"gopkg.in/yaml.v3"
)

const networkName = "app-network"

// A conditionally included block of the compose document.
type fragment struct {
	Name    string
	Include func(p stack.Profile) bool
	Render  func(p stack.Profile) (string, error)
}

func always(stack.Profile) bool { return true }

// Rendered in order and joined by a blank line.
var composeFragments = []fragment{
	{Name: "header", Include: always, Render: renderHeader},
	{Name: "frontend", Include: stack.Profile.HasFrontend, Render: renderFrontendService},
	{Name: "backend", Include: stack.Profile.HasBackend, Render: renderBackendService},
	{Name: "database", Include: hasDatabaseService, Render: renderDatabaseService},
	{Name: "networks", Include: always, Render: renderNetworks},
	{Name: "volumes", Include: stack.Profile.HasDatabase, Render: renderVolumes},
}

// Lists the fragments the compose document for p is built from.
func ComposeFragments(p stack.Profile) []string {
	var names []string
	for _, f := range composeFragments {
		if f.Include(p) {
			names = append(names, f.Name)
		}
	}
	return names
}

// Renders docker-compose.yml for the profile.
func Compose(p stack.Profile) (string, error) {
	if p.HasDatabase() {
		if _, ok := databases[p.DatabaseKind]; !ok {
			return "", fmt.Errorf("%w: unknown database %q", ErrMalformedArtifact, p.DatabaseKind)
		}
	}

	var blocks []string
	for _, f := range composeFragments {
		if !f.Include(p) {
			continue
		}

		block, err := f.Render(p)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, strings.TrimRight(block, "\n")+"\n")
	}

	doc := strings.Join(blocks, "\n")

	var parsed map[string]any
	if err := yaml.Unmarshal([]byte(doc), &parsed); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedArtifact, ComposeFile, err)
	}

	return doc, nil
}

type service struct {
	Name        string
	Image       string
	Dockerfile  string
	Ports       []string
	Environment []string
	Volumes     []string
	DependsOn   []string
	Network     string
}

var serviceTemplate = `
  {{.Name}}:
{{- if .Image}}
    image: {{.Image}}
{{- else}}
    build:
      context: .
      dockerfile: {{.Dockerfile}}
{{- end}}
{{- if .Ports}}
    ports:
{{- range .Ports}}
      - "{{.}}"
{{- end}}
{{- end}}
{{- if .Environment}}
    environment:
{{- range .Environment}}
      - {{.}}
{{- end}}
{{- end}}
{{- if .Volumes}}
    volumes:
{{- range .Volumes}}
      - {{.}}
{{- end}}
{{- end}}
{{- if .DependsOn}}
    depends_on:
{{- range .DependsOn}}
      - {{.}}
{{- end}}
{{- end}}
    networks:
      - {{.Network}}
`

func renderService(s service) (string, error) {
	s.Network = networkName
	out, err := render("compose "+s.Name, serviceTemplate, s)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(out, "\n"), nil
}

func portMapping(port int) string {
	return fmt.Sprintf("%d:%d", port, port)
}

func renderHeader(stack.Profile) (string, error) {
	return "version: '3.8'\n\nservices:\n", nil
}

func renderFrontendService(p stack.Profile) (string, error) {
	s := service{
		Name:       "frontend",
		Dockerfile: Dockerfile,
		Ports:      []string{portMapping(80)},
	}
	if p.HasBackend() {
		s.DependsOn = append(s.DependsOn, "backend")
	}
	if hasDatabaseService(p) {
		s.DependsOn = append(s.DependsOn, "database")
	}

	return renderService(s)
}

func renderBackendService(p stack.Profile) (string, error) {
	s := service{
		Name:        "backend",
		Dockerfile:  Dockerfile,
		Ports:       []string{portMapping(p.BackendPort)},
		Environment: []string{"NODE_ENV=production"},
	}
	if p.HasFrontend() {
		s.Dockerfile = BackendDockerfile
	}

	if p.HasDatabase() {
		db := databases[p.DatabaseKind]
		s.Environment = append(s.Environment, db.BackendEnv...)
		if db.BackendVolume != "" {
			s.Volumes = append(s.Volumes, db.BackendVolume)
		}
	}
	if hasDatabaseService(p) {
		s.DependsOn = append(s.DependsOn, "database")
	}

	return renderService(s)
}

func renderDatabaseService(p stack.Profile) (string, error) {
	db := databases[p.DatabaseKind]
	return renderService(service{
		Name:        "database",
		Image:       db.Image,
		Ports:       []string{portMapping(db.Port)},
		Environment: db.Environment,
		Volumes:     []string{db.Volume + ":" + db.MountPath},
	})
}

func renderNetworks(stack.Profile) (string, error) {
	return "networks:\n  " + networkName + ":\n    driver: bridge\n", nil
}

func renderVolumes(p stack.Profile) (string, error) {
	var b strings.Builder
	b.WriteString("volumes:\n")
	b.WriteString("  " + genericVolume + ":\n")
	if v := databases[p.DatabaseKind].Volume; v != "" {
		b.WriteString("  " + v + ":\n")
	}
	return b.String(), nil
}
