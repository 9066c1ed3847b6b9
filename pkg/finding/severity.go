package finding

import "strings"

// Severity represents the severity level of a security finding.
// The declared order is the rendering priority order: Critical first.
type Severity int

const (
	// Critical represents immediate compromise (RCE, hardcoded secrets).
	Critical Severity = iota

	// High represents significant impact requiring prompt fix (SQLi, XXE).
	High

	// Medium represents moderate impact (weak crypto, open redirects).
	Medium

	// Low represents limited impact (verbose errors, minor info leak).
	Low

	// Info represents informational findings with no direct security impact.
	Info
)

// severityCount sizes bucket arrays indexed by Severity.
const severityCount = int(Info) + 1

var severityNames = [severityCount]string{"CRITICAL", "HIGH", "MEDIUM", "LOW", "INFO"}

// IsValid reports whether s is a recognized severity level.
func (s Severity) IsValid() bool {
	return s >= Critical && s <= Info
}

// String returns the upper-case severity name, matching the form
// scanners report. Out-of-range values render as INFO.
func (s Severity) String() string {
	if !s.IsValid() {
		return severityNames[Info]
	}
	return severityNames[s]
}

// MarshalText implements encoding.TextMarshaler so findings serialize
// with severity names rather than bare integers.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names fold
// to Info, mirroring ParseSeverity.
func (s *Severity) UnmarshalText(text []byte) error {
	*s = ParseSeverity(string(text))
	return nil
}

// ParseSeverity maps a scanner-reported severity string onto the fixed
// set. Matching is case-insensitive; anything unrecognized folds to Info.
func ParseSeverity(raw string) Severity {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CRITICAL":
		return Critical
	case "HIGH":
		return High
	case "MEDIUM":
		return Medium
	case "LOW":
		return Low
	case "INFO":
		return Info
	default:
		return Info
	}
}

// Severities returns all severity levels in rendering priority order.
func Severities() []Severity {
	return []Severity{Critical, High, Medium, Low, Info}
}
