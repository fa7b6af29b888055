package artifact

import (
	"fmt"

	"github.com/flexstack/auto-docker/stack"
)

var backendTemplates = map[stack.BackendKind]string{
	stack.BackendNodeJS: nodeTemplate,
	stack.BackendPython: pythonTemplate,
	stack.BackendJava:   javaTemplate,
	stack.BackendGo:     golangTemplate,
	stack.BackendPHP:    phpTemplate,
	stack.BackendDotNet: dotnetTemplate,
	stack.BackendRust:   rustTemplate,
}

// Renders the Dockerfile for the profile's backend.
func GenerateBackendDockerfile(p stack.Profile) (string, error) {
	tpl, ok := backendTemplates[p.BackendKind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, p.BackendKind)
	}

	binary := p.BinaryName
	if binary == "" {
		binary = stack.DefaultBinaryName
	}

	return render(string(p.BackendKind), tpl, map[string]any{
		"Port":       p.BackendPort,
		"BinaryName": binary,
	})
}
