package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/texsift/texsift-go/internal/filter"
	"github.com/texsift/texsift-go/internal/sink"
	"github.com/texsift/texsift-go/internal/style"
)

// newEngine assembles the output pipeline from the persistent flags:
// palette (default or style file), destinations (terminal plus the tee
// file unless disabled) and the diagnostics logger.
//
// The returned cleanup closes the tee file and must be deferred.
func newEngine() (*filter.Engine, func(), error) {
	noop := func() {}

	if noColor {
		color.NoColor = true
	}

	palette := style.Default()
	if stylePath != "" {
		p, err := style.LoadPalette(stylePath)
		if err != nil {
			return nil, noop, err
		}
		palette = p
	}

	var logger *slog.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	dsts := []io.Writer{os.Stdout}
	cleanup := noop
	if !noTee {
		f, err := os.Create(teePath)
		if err != nil {
			return nil, noop, fmt.Errorf("creating tee file: %w", err)
		}
		dsts = append(dsts, f)
		cleanup = func() { _ = f.Close() }
	}

	eng := filter.New(sink.New(dsts...),
		filter.WithPalette(palette),
		filter.WithLogger(logger),
	)
	return eng, cleanup, nil
}
