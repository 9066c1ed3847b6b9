package finding

import "github.com/reportforge/reportforge/pkg/defaults"

// Status is the three-level overall scan outcome the process exit code
// is derived from. It considers every finding, never the truncated
// display set.
type Status int

const (
	// StatusClean means no CRITICAL or HIGH findings exist.
	StatusClean Status = iota

	// StatusHigh means at least one HIGH finding exists, but no CRITICAL.
	StatusHigh

	// StatusCritical means at least one CRITICAL finding exists.
	StatusCritical
)

// StatusOf derives the overall status from the full finding list.
func StatusOf(findings []Finding) Status {
	status := StatusClean
	for _, f := range findings {
		switch f.Severity {
		case Critical:
			return StatusCritical
		case High:
			status = StatusHigh
		}
	}
	return status
}

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusCritical:
		return "CRITICAL"
	case StatusHigh:
		return "HIGH"
	default:
		return "CLEAN"
	}
}

// ExitCode maps the status onto the CLI exit code band.
func (s Status) ExitCode() int {
	switch s {
	case StatusCritical:
		return defaults.ExitCriticalRisk
	case StatusHigh:
		return defaults.ExitHighRisk
	default:
		return defaults.ExitClean
	}
}
