package report

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/finding"
)

// fakeScanner writes an executable shell script and returns its path.
func fakeScanner(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell fixture scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "semgrep")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestGenerateScanReport(t *testing.T) {
	dir := t.TempDir()
	binary := fakeScanner(t, `cat <<'EOF'
{"results": [{"check_id": "rule.high", "path": "a.go", "start": {"line": 3}, "extra": {"severity": "HIGH", "message": "weak hash"}}], "errors": []}
EOF
exit 1`)

	report, err := GenerateScanReport(context.Background(), ScanOptions{
		Target:        ".",
		OutputDir:     dir,
		SemgrepBinary: binary,
		Logger:        zerolog.Nop(),
	})
	require.NoError(t, err)

	assert.Equal(t, finding.StatusHigh, report.Status)
	require.Len(t, report.Outcome.Findings, 1)
	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, filepath.Join(dir, defaults.ScanReportFile), report.Path)

	raw, err := os.ReadFile(report.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestGenerateScanReportMissingScanner(t *testing.T) {
	// A missing scanner still produces a report documenting the failure.
	dir := t.TempDir()
	report, err := GenerateScanReport(context.Background(), ScanOptions{
		Target:        ".",
		OutputDir:     dir,
		SemgrepBinary: filepath.Join(t.TempDir(), "no-such-semgrep"),
		Logger:        zerolog.Nop(),
	})
	require.NoError(t, err)

	assert.Equal(t, finding.StatusClean, report.Status)
	assert.Empty(t, report.Outcome.Findings)
	require.Len(t, report.Outcome.Errors, 1)
	assert.Equal(t, "Semgrep not installed", report.Outcome.Errors[0])

	_, statErr := os.Stat(report.Path)
	assert.NoError(t, statErr)
}

func TestGenerateScanReportWriteFailure(t *testing.T) {
	// A regular file where the artifacts directory should be.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := GenerateScanReport(context.Background(), ScanOptions{
		Target:        ".",
		OutputDir:     blocker,
		SemgrepBinary: fakeScanner(t, `echo '{"results": [], "errors": []}'`),
		Logger:        zerolog.Nop(),
	})
	require.ErrorIs(t, err, ErrArtifactWrite)
}

func TestGenerateValidationReport(t *testing.T) {
	dir := t.TempDir()
	report, err := GenerateValidationReport(context.Background(), ValidationOptions{
		OutputDir: dir,
		Seed:      42,
		Logger:    zerolog.Nop(),
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, defaults.ValidationReportFile), report.Path)
	assert.Equal(t, report.Passed, report.Result.Validation.Passed())
	assert.InDelta(t, defaults.BasePrice, report.Summary.Mean, 20)

	raw, err := os.ReadFile(report.Path)
	require.NoError(t, err)
	out := string(raw)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Monte Carlo Validation Report")
	assert.Contains(t, out, report.ReportID)
}

func TestGenerateValidationReportSeedDeterminism(t *testing.T) {
	first, err := GenerateValidationReport(context.Background(), ValidationOptions{
		OutputDir: t.TempDir(), Seed: 99, Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	second, err := GenerateValidationReport(context.Background(), ValidationOptions{
		OutputDir: t.TempDir(), Seed: 99, Logger: zerolog.Nop(),
	})
	require.NoError(t, err)

	assert.Equal(t, first.Result.NumSimulations, second.Result.NumSimulations)
	assert.Equal(t, first.Summary.Mean, second.Summary.Mean)
	assert.Equal(t, first.Result.Sensitivities, second.Result.Sensitivities)
}

func TestResolveOutputDir(t *testing.T) {
	t.Setenv(defaults.EnvArtifactsDir, "/tmp/from-env")

	assert.Equal(t, "/explicit", ResolveOutputDir("/explicit"))
	assert.Equal(t, "/tmp/from-env", ResolveOutputDir(""))

	t.Setenv(defaults.EnvArtifactsDir, "")
	assert.Equal(t, defaults.ArtifactsDir, ResolveOutputDir(""))
}
