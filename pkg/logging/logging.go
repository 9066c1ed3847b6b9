// Package logging constructs the zerolog logger the pipeline threads
// through its components. Human-facing progress goes through pkg/ui;
// this logger carries structured diagnostics only.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the diagnostic output shape.
type Options struct {
	// JSON emits machine-readable lines instead of the console format.
	JSON bool

	// Verbose lowers the level from warn to debug.
	Verbose bool

	// Writer overrides the destination (default: stderr). Used by
	// tests to capture output.
	Writer io.Writer
}

// New builds a logger per opts. The default level is warn so normal
// runs stay quiet on stderr; -verbose opens the debug firehose.
func New(opts Options) zerolog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if !opts.JSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
