// Package defaults provides canonical default values for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for all runtime configuration defaults.
//
// Usage:
//
//	cfg.Timeout = defaults.ScanTimeout
//	path := filepath.Join(dir, defaults.ScanReportFile)
//
// DO NOT use hardcoded values like `cap := 20` anywhere.
// Instead, reference the appropriate constant from this package.
package defaults

import "time"

// Version is the current reportforge version
const Version = "1.3.0"

// ModelVersion identifies the pricing model release documented by
// validation reports.
const ModelVersion = "3.2.1"

// ============================================================================
// ARTIFACT OUTPUT
// ============================================================================
//
// Every run writes exactly one report file into the artifacts directory.
// ============================================================================

const (
	// EnvArtifactsDir is the environment variable that overrides the
	// artifacts directory when no -output flag is given
	EnvArtifactsDir = "DOMINO_ARTIFACTS_DIR"

	// ArtifactsDir is the fallback artifacts directory (/mnt/artifacts)
	ArtifactsDir = "/mnt/artifacts"

	// ScanReportFile is the fixed filename for findings reports
	ScanReportFile = "security_scan_report.pdf"

	// ValidationReportFile is the fixed filename for validation reports
	ValidationReportFile = "validation_report.html"
)

// ============================================================================
// SCANNER SETTINGS
// ============================================================================

const (
	// ScanTargetDir is the default directory handed to the scanner
	ScanTargetDir = "/mnt/imported/code/"

	// SemgrepBinary is the scanner executable looked up on PATH
	SemgrepBinary = "semgrep"

	// SemgrepRuleset is the registry ruleset passed as --config
	SemgrepRuleset = "auto"

	// ScanTimeout bounds one scanner invocation (10 minutes)
	ScanTimeout = 600 * time.Second
)

// ============================================================================
// FINDING DISPLAY POLICY
// ============================================================================

const (
	// FindingDisplayCap is the per-severity number of findings rendered in
	// full; buckets beyond it collapse into one overflow note (20)
	FindingDisplayCap = 20

	// MessageMaxLen is the display length limit for finding messages;
	// longer messages are cut to MessageMaxLen-3 runes plus "..." (200)
	MessageMaxLen = 200
)

// ============================================================================
// SIMULATION SETTINGS
// ============================================================================
//
// Metrics mode synthesizes a completed simulation result set. These
// constants shape that payload.
// ============================================================================

const (
	// SampleCount is the number of simulated price draws (50)
	SampleCount = 50

	// BasePrice is the undrifted instrument price (100.0)
	BasePrice = 100.0

	// PriceVolatility is the stddev of the per-draw drift (0.15)
	PriceVolatility = 0.15

	// TrajectoryIterations is the length of the synthetic convergence
	// trajectory (25)
	TrajectoryIterations = 25
)

// ============================================================================
// STATISTICAL CONSTANTS
// ============================================================================

const (
	// ZScore95 is the two-tailed 95% confidence multiplier (1.96)
	ZScore95 = 1.96

	// VaRMultiplier is the one-tailed 95% Value-at-Risk multiplier (1.645)
	VaRMultiplier = 1.645

	// CVaRMultiplier is the 95% Conditional VaR multiplier; it always
	// exceeds VaRMultiplier so CVaR sits deeper in the tail (2.063)
	CVaRMultiplier = 2.063

	// RMSEThreshold is the validation gate on root mean square error (0.03)
	RMSEThreshold = 0.03

	// RSquaredThreshold is the validation gate on model fit (0.95)
	RSquaredThreshold = 0.95

	// MAEThreshold is the reporting threshold on mean absolute error (0.025)
	MAEThreshold = 0.025

	// ConvergenceThreshold is the reporting threshold on the simulation
	// convergence rate (0.99)
	ConvergenceThreshold = 0.99

	// StdDevThreshold is the reporting threshold on sample volatility (20.0)
	StdDevThreshold = 20.0
)

// ============================================================================
// CHART CANVASES
// ============================================================================
//
// Logical drawing units. Renderers scale these, never redefine them.
// ============================================================================

const (
	// ChartWidth is the logical canvas width for all charts (400)
	ChartWidth = 400

	// ChartHeight is the canvas height for line and histogram charts (200)
	ChartHeight = 200

	// SensitivityChartHeight is the canvas height for the horizontal
	// sensitivity bars (180)
	SensitivityChartHeight = 180

	// HistogramBins is the fixed bin count for sample histograms (15)
	HistogramBins = 15
)

// ============================================================================
// PDF PAGE SETUP
// ============================================================================

const (
	// PageSize is the default PDF page size
	PageSize = "Letter"

	// PageOrientation is the default PDF orientation (portrait)
	PageOrientation = "P"

	// PageMargin is the default PDF margin in millimeters (19.0)
	PageMargin = 19.0
)
