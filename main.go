// A library for generating Dockerfiles, an nginx config and a compose file from project source code.
package autodocker

import (
	"context"
	"log/slog"
	"os"

	"github.com/flexstack/auto-docker/artifact"
	"github.com/flexstack/auto-docker/probe"
	"github.com/flexstack/auto-docker/stack"
)

// Creates a new generator. If no logger is provided, a default logger is created.
func New(log ...*slog.Logger) *Generator {
	var logger *slog.Logger

	if len(log) > 0 {
		logger = log[0]
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	return &Generator{
		log:         logger,
		detector:    &stack.Detector{Log: logger},
		synthesizer: &artifact.Synthesizer{Log: logger},
	}
}

type Generator struct {
	log         *slog.Logger
	detector    *stack.Detector
	synthesizer *artifact.Synthesizer
}

// Detects the stack of the project at path. Detection never fails.
func (g *Generator) Detect(ctx context.Context, path string) stack.Profile {
	return g.detector.Detect(ctx, probe.New(path, g.log))
}

// Detects the stack of the project at path and renders its artifacts without writing them.
func (g *Generator) Generate(ctx context.Context, path string) (artifact.Set, error) {
	profile := g.Detect(ctx, path)
	return g.synthesizer.Synthesize(profile)
}

// Generates the artifacts for the project at path and writes them to the same directory.
// Writing stops at the first failure; files already written are kept.
func (g *Generator) Write(ctx context.Context, path string) (artifact.Set, error) {
	set, err := g.Generate(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := WriteAll(probe.New(path, g.log), set); err != nil {
		return nil, err
	}

	g.log.Info("Auto-generated Docker setup", "files", set.Names())
	return set, nil
}

// Writes every file of the set in canonical order, stopping at the first error.
func WriteAll(w probe.Writer, set artifact.Set) error {
	for _, name := range set.Names() {
		if err := w.WriteFile(name, set[name]); err != nil {
			return err
		}
	}

	return nil
}
