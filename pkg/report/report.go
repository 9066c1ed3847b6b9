// Package report is the pipeline: it runs or synthesizes the data
// source, assembles the document, renders it, and writes exactly one
// artifact file per run. Everything upstream of it is pure; this is the
// only package that touches the artifacts directory.
package report

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reportforge/reportforge/pkg/chart"
	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/document"
	"github.com/reportforge/reportforge/pkg/finding"
	"github.com/reportforge/reportforge/pkg/metrics"
	"github.com/reportforge/reportforge/pkg/render"
	"github.com/reportforge/reportforge/pkg/scanner"
)

// ErrArtifactWrite wraps failures to create or write the report file.
// It is the only error the findings pipeline can return: scan failures
// degrade into report content instead.
var ErrArtifactWrite = errors.New("report: artifact write failed")

// ScanOptions configures one findings-report run.
type ScanOptions struct {
	// Target is the directory handed to the scanner
	// (default: /mnt/imported/code/).
	Target string

	// OutputDir overrides the artifacts directory. Empty falls back to
	// $DOMINO_ARTIFACTS_DIR, then /mnt/artifacts.
	OutputDir string

	// Style is the presentation config (default: DefaultStyle()).
	Style *StyleConfig

	// SemgrepBinary overrides the scanner executable.
	SemgrepBinary string

	// Timeout bounds the scanner invocation.
	Timeout time.Duration

	Logger zerolog.Logger
}

// ScanReport is the result of one findings-report run.
type ScanReport struct {
	// Outcome holds every parsed finding and scan diagnostic.
	Outcome finding.Outcome

	// Status is the overall verdict the exit code derives from.
	Status finding.Status

	// Path is the written artifact.
	Path string

	ReportID string
}

// GenerateScanReport runs the scanner and writes the findings PDF.
// Scan failures become report content; only an artifact write failure
// is an error.
func GenerateScanReport(ctx context.Context, opts ScanOptions) (ScanReport, error) {
	style := opts.Style
	if style == nil {
		style = DefaultStyle()
	}
	target := opts.Target
	if target == "" {
		target = defaults.ScanTargetDir
	}

	runner := scanner.NewRunner(opts.Logger)
	if opts.SemgrepBinary != "" {
		runner.Binary = opts.SemgrepBinary
	}
	if opts.Timeout > 0 {
		runner.Timeout = opts.Timeout
	}

	outcome := runner.Scan(ctx, target)
	report := ScanReport{
		Outcome:  outcome,
		Status:   finding.StatusOf(outcome.Findings),
		ReportID: uuid.NewString(),
	}

	meta := document.Meta{
		ReportID:    report.ReportID,
		GeneratedAt: time.Now(),
		ToolVersion: defaults.Version,
	}
	doc := document.AssembleFindings(outcome, meta)

	path, err := writeArtifact(opts.OutputDir, defaults.ScanReportFile, func(f *os.File) error {
		r := render.NewPDFRenderer(f, render.PDFConfig{
			PageSize:    style.Page.Size,
			Orientation: style.Page.Orientation,
			Margin:      style.Page.Margin,
			FooterText:  style.Branding.FooterText,
		})
		return render.RenderDocument(r, doc)
	})
	if err != nil {
		return report, err
	}
	report.Path = path

	opts.Logger.Info().
		Str("path", path).
		Str("status", report.Status.String()).
		Int("findings", len(outcome.Findings)).
		Msg("scan report written")
	return report, nil
}

// ValidationOptions configures one validation-report run.
type ValidationOptions struct {
	// OutputDir overrides the artifacts directory.
	OutputDir string

	// Style is the presentation config (default: DefaultStyle()).
	Style *StyleConfig

	// Seed fixes the simulation random source; zero seeds from the
	// clock.
	Seed int64

	Logger zerolog.Logger
}

// ValidationReport is the result of one validation-report run.
type ValidationReport struct {
	Result  metrics.SimulationResult
	Summary metrics.Summary

	// Passed mirrors the validation gate shown on the report badge.
	Passed bool

	// Path is the written artifact.
	Path string

	ReportID string
}

// GenerateValidationReport synthesizes a simulation result set and
// writes the validation HTML.
func GenerateValidationReport(_ context.Context, opts ValidationOptions) (ValidationReport, error) {
	style := opts.Style
	if style == nil {
		style = DefaultStyle()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	result := metrics.Simulate(rng)
	summary, err := metrics.Summarize(result.Prices)
	if err != nil {
		// Cannot happen with the synthesized sample set; an empty one
		// is a programming error worth surfacing.
		return ValidationReport{}, fmt.Errorf("summarize prices: %w", err)
	}

	trajectory := metrics.Trajectory(rng, summary.Mean, defaults.TrajectoryIterations)
	charts := document.ValidationCharts{
		Convergence:   chart.NewConvergence(trajectory, summary.Mean),
		Histogram:     chart.NewHistogram(result.Prices),
		Sensitivities: chart.NewSensitivityBars(result.Sensitivities),
	}

	report := ValidationReport{
		Result:   result,
		Summary:  summary,
		Passed:   result.Validation.Passed(),
		ReportID: uuid.NewString(),
	}

	meta := document.Meta{
		ReportID:    report.ReportID,
		GeneratedAt: time.Now(),
		ToolVersion: defaults.Version,
	}
	doc := document.AssembleValidation(result, summary, charts, meta)

	path, err := writeArtifact(opts.OutputDir, defaults.ValidationReportFile, func(f *os.File) error {
		r := render.NewHTMLRenderer(f, render.HTMLConfig{
			CompanyName:    style.Branding.CompanyName,
			FooterText:     style.Branding.FooterText,
			AccentColor:    style.Branding.AccentColor,
			SecondaryColor: style.Branding.SecondaryColor,
		})
		return render.RenderDocument(r, doc)
	})
	if err != nil {
		return report, err
	}
	report.Path = path

	opts.Logger.Info().
		Str("path", path).
		Bool("passed", report.Passed).
		Int64("seed", seed).
		Msg("validation report written")
	return report, nil
}

// ResolveOutputDir picks the artifacts directory: the explicit flag
// wins, then $DOMINO_ARTIFACTS_DIR, then the fixed fallback.
func ResolveOutputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := os.Getenv(defaults.EnvArtifactsDir); dir != "" {
		return dir
	}
	return defaults.ArtifactsDir
}

// writeArtifact renders into dir/name, creating the directory first.
// Every failure wraps ErrArtifactWrite.
func writeArtifact(dir, name string, renderTo func(*os.File) error) (string, error) {
	dir = ResolveOutputDir(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrArtifactWrite, err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArtifactWrite, err)
	}

	if err := renderTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("%w: %v", ErrArtifactWrite, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrArtifactWrite, err)
	}
	return path, nil
}
