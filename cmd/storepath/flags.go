package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	// FormatText draws the route on an ASCII map.
	FormatText OutputFormat = "text"
	// FormatJSON prints a single JSON document.
	FormatJSON OutputFormat = "json"
)

var errBadOutput = errors.New("output format must be text or json")

// GlobalFlags holds flags shared by every command.
type GlobalFlags struct {
	Layout       string
	OutputFormat string
	Verbose      bool
	NoMap        bool
}

// register binds the persistent flags on the root command.
func (f *GlobalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.Layout, "layout", "l", "store.yaml", "Path to the store layout file")
	cmd.PersistentFlags().StringVarP(&f.OutputFormat, "output", "o", string(FormatText), "Output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false, "Log planning details to stderr")
	cmd.PersistentFlags().BoolVar(&f.NoMap, "no-map", false, "Omit the ASCII map from text output")
}

func (f *GlobalFlags) validate() error {
	switch OutputFormat(f.OutputFormat) {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", errBadOutput, f.OutputFormat)
	}
}

// Format returns the parsed output format.
func (f *GlobalFlags) Format() OutputFormat {
	return OutputFormat(f.OutputFormat)
}

// logger writes text records to w, at debug level when verbose.
func (f *GlobalFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if f.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
