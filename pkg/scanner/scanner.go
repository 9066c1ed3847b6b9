// Package scanner wraps the external semgrep CLI behind the report
// pipeline's one contract: given a target directory, produce a
// finding.Outcome. Every failure mode degrades into the outcome's error
// strings so the pipeline can render a report that documents the
// failure instead of aborting; Scan itself never returns an error.
package scanner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/finding"
)

// Classified scan failures. Each maps to a fixed diagnostic string in
// the outcome; check with errors.Is.
var (
	// ErrToolNotFound means the scanner binary is not on PATH.
	ErrToolNotFound = errors.New("scanner: semgrep not installed")

	// ErrToolTimeout means the scan exceeded its deadline.
	ErrToolTimeout = errors.New("scanner: scan timed out")

	// ErrOutputParse means the scanner produced output that is not
	// valid JSON.
	ErrOutputParse = errors.New("scanner: output parse error")
)

// Runner invokes semgrep against a target directory. Zero-value fields
// fall back to the canonical defaults.
type Runner struct {
	// Binary overrides the semgrep executable (default: "semgrep").
	Binary string

	// Ruleset is the --config value (default: "auto", the registry
	// ruleset).
	Ruleset string

	// Timeout bounds one scan invocation (default: 10 minutes). The
	// pipeline never retries a timed-out scan.
	Timeout time.Duration

	// Logger receives diagnostics; the document carries the
	// user-facing error strings.
	Logger zerolog.Logger
}

// NewRunner returns a Runner with the canonical defaults.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{
		Binary:  defaults.SemgrepBinary,
		Ruleset: defaults.SemgrepRuleset,
		Timeout: defaults.ScanTimeout,
		Logger:  logger,
	}
}

// Scan runs one semgrep invocation and returns the parsed outcome.
// Semgrep exits non-zero when findings exist, so a non-zero exit with
// output is informational, not a failure. Missing binary, timeout,
// malformed output, and other exec failures each degrade into one
// diagnostic string on the outcome.
func (r *Runner) Scan(ctx context.Context, target string) finding.Outcome {
	binary := r.Binary
	if binary == "" {
		binary = defaults.SemgrepBinary
	}
	ruleset := r.Ruleset
	if ruleset == "" {
		ruleset = defaults.SemgrepRuleset
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaults.ScanTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, "scan", "--config="+ruleset, "--json", target)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Info().Str("target", target).Str("ruleset", ruleset).Msg("starting scan")
	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	if outcome, failed := r.classify(ctx, runErr, stdout.Len() > 0); failed {
		return outcome
	}

	if stdout.Len() == 0 {
		// Scanner produced nothing at all: an empty report, not a
		// documented failure.
		r.Logger.Warn().
			Str("stderr", excerpt(stderr.String())).
			Msg("scanner produced no output")
		return finding.Outcome{}
	}

	outcome, err := Parse(stdout.Bytes())
	if err != nil {
		r.Logger.Error().Err(err).Msg("scanner output unparseable")
		detail := strings.TrimPrefix(err.Error(), ErrOutputParse.Error()+": ")
		return finding.Outcome{Errors: []string{"JSON parse error: " + detail}}
	}

	r.Logger.Info().
		Int("findings", len(outcome.Findings)).
		Dur("elapsed", elapsed).
		Msg("scan complete")
	return outcome
}

// classify maps an exec failure onto the outcome taxonomy. A non-zero
// exit with output means findings exist and is not a failure.
func (r *Runner) classify(ctx context.Context, runErr error, hasOutput bool) (finding.Outcome, bool) {
	if runErr == nil {
		return finding.Outcome{}, false
	}

	switch {
	// exec.ErrNotFound covers PATH lookups, os.ErrNotExist covers
	// explicit -semgrep paths that do not exist.
	case errors.Is(runErr, exec.ErrNotFound), errors.Is(runErr, os.ErrNotExist):
		r.Logger.Error().Err(ErrToolNotFound).Msg("scan failed")
		return finding.Outcome{Errors: []string{"Semgrep not installed"}}, true

	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		r.Logger.Error().Err(ErrToolTimeout).Msg("scan failed")
		return finding.Outcome{Errors: []string{"Scan timed out"}}, true

	default:
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) && hasOutput {
			// Findings make semgrep exit non-zero; the JSON on stdout
			// is the real result.
			r.Logger.Debug().Int("exit_code", exitErr.ExitCode()).Msg("non-zero scanner exit with output")
			return finding.Outcome{}, false
		}
		r.Logger.Error().Err(runErr).Msg("scan failed")
		return finding.Outcome{Errors: []string{runErr.Error()}}, true
	}
}

// excerpt bounds stderr noise for log lines.
func excerpt(s string) string {
	const max = 300
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
