package main

import (
	"fmt"
	"os"

	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/ui"
)

// exitInternal prints a formatted error message and exits with the
// internal-error code.
func exitInternal(format string, args ...any) {
	ui.PrintError(fmt.Sprintf(format, args...))
	os.Exit(defaults.ExitInternalError)
}

// exitUsage prints an error message followed by a usage hint, then
// exits with the usage-error code.
func exitUsage(msg, usage string) {
	ui.PrintError(msg)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:", usage)
	os.Exit(defaults.ExitUsageError)
}
