package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	autodocker "github.com/flexstack/auto-docker"
	"github.com/lmittmann/tint"
	flag "github.com/spf13/pflag"
)

func main() {
	var path string
	flag.StringVar(&path, "path", ".", "Path to the project directory")
	var noColor bool
	flag.BoolVar(&noColor, "no-color", false, "Disable colorized output")
	var dryRun bool
	flag.BoolVar(&dryRun, "dry-run", false, "Print the generated files instead of writing them")
	flag.Parse()

	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})

	log := slog.New(handler)
	gen := autodocker.New(log)
	ctx := context.Background()

	if dryRun {
		set, err := gen.Generate(ctx, path)
		if err != nil {
			log.Error("fatal error", "error", err.Error())
			os.Exit(1)
		}

		for _, name := range set.Names() {
			fmt.Printf("==> %s <==\n%s\n", name, set[name])
		}
		return
	}

	if _, err := gen.Write(ctx, path); err != nil {
		log.Error("fatal error", "error", err.Error())
		os.Exit(1)
	}
}
