package defaults

// Exit codes for the CLI. The 0/1/2 band mirrors the overall finding
// status and is derived from every finding, not just the displayed ones.
const (
	ExitClean         = 0 // No CRITICAL or HIGH findings
	ExitHighRisk      = 1 // At least one HIGH finding, no CRITICAL
	ExitCriticalRisk  = 2 // At least one CRITICAL finding
	ExitUsageError    = 3 // Invalid arguments or configuration
	ExitInternalError = 4 // Unrecoverable failure (write error, empty samples)
)
