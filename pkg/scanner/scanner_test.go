package scanner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportforge/reportforge/pkg/finding"
)

const sampleOutput = `{
	"results": [
		{
			"check_id": "go.lang.security.audit.crypto.use_of_weak_crypto",
			"path": "internal/auth/token.go",
			"start": {"line": 42},
			"extra": {"severity": "HIGH", "message": "MD5 is a weak hash function"}
		},
		{
			"check_id": "go.lang.security.audit.dangerous-exec-command",
			"path": "cmd/tool/main.go",
			"start": {"line": 17},
			"extra": {"severity": "ERROR", "message": "user input reaches exec"}
		}
	],
	"errors": [
		{"message": "Skipped vendored/lib.go: file too large"}
	]
}`

func TestParse(t *testing.T) {
	outcome, err := Parse([]byte(sampleOutput))
	require.NoError(t, err)

	require.Len(t, outcome.Findings, 2)
	f := outcome.Findings[0]
	assert.Equal(t, "go.lang.security.audit.crypto.use_of_weak_crypto", f.CheckID)
	assert.Equal(t, finding.High, f.Severity)
	assert.Equal(t, "internal/auth/token.go", f.FilePath)
	assert.Equal(t, 42, f.Line)

	// "ERROR" is not in the fixed severity set; folds to INFO.
	assert.Equal(t, finding.Info, outcome.Findings[1].Severity)

	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, "Skipped vendored/lib.go: file too large", outcome.Errors[0])
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"results": [`))
	require.ErrorIs(t, err, ErrOutputParse)
}

func TestParseDedup(t *testing.T) {
	raw := `{"results": [
		{"check_id": "rule.a", "path": "x.go", "start": {"line": 5}, "extra": {"severity": "LOW", "message": "first"}},
		{"check_id": "rule.a", "path": "x.go", "start": {"line": 5}, "extra": {"severity": "LOW", "message": "second copy"}},
		{"check_id": "rule.a", "path": "x.go", "start": {"line": 6}, "extra": {"severity": "LOW", "message": "different line"}}
	]}`

	outcome, err := Parse([]byte(raw))
	require.NoError(t, err)
	require.Len(t, outcome.Findings, 2)
	assert.Equal(t, "first", outcome.Findings[0].Message)
	assert.Equal(t, 6, outcome.Findings[1].Line)
}

func TestParseEmptyDocument(t *testing.T) {
	outcome, err := Parse([]byte(`{"results": [], "errors": []}`))
	require.NoError(t, err)
	assert.Empty(t, outcome.Findings)
	assert.Empty(t, outcome.Errors)
}

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

func testRunner(binary string) *Runner {
	r := NewRunner(zerolog.Nop())
	r.Binary = binary
	return r
}

func TestScanMissingBinary(t *testing.T) {
	r := testRunner(filepath.Join(t.TempDir(), "no-such-semgrep"))
	outcome := r.Scan(context.Background(), ".")

	assert.Empty(t, outcome.Findings)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, "Semgrep not installed", outcome.Errors[0])
}

func TestScanTimeout(t *testing.T) {
	r := testRunner(fakeScanner(t, "sleep 5"))
	r.Timeout = 50 * time.Millisecond

	outcome := r.Scan(context.Background(), ".")

	assert.Empty(t, outcome.Findings)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, "Scan timed out", outcome.Errors[0])
}

func TestScanEmptyOutput(t *testing.T) {
	// No stdout at all: empty outcome, no documented error.
	r := testRunner(fakeScanner(t, "echo 'nothing to scan' >&2\nexit 0"))
	outcome := r.Scan(context.Background(), ".")

	assert.Empty(t, outcome.Findings)
	assert.Empty(t, outcome.Errors)
}

func TestScanNonZeroExitWithFindings(t *testing.T) {
	// Semgrep exits 1 when findings exist; the JSON on stdout is the
	// real result.
	r := testRunner(fakeScanner(t, `cat <<'EOF'
{"results": [{"check_id": "rule.x", "path": "a.go", "start": {"line": 1}, "extra": {"severity": "CRITICAL", "message": "boom"}}], "errors": []}
EOF
exit 1`))

	outcome := r.Scan(context.Background(), ".")

	assert.Empty(t, outcome.Errors)
	require.Len(t, outcome.Findings, 1)
	assert.Equal(t, finding.Critical, outcome.Findings[0].Severity)
}

func TestScanMalformedOutput(t *testing.T) {
	r := testRunner(fakeScanner(t, `echo '{"results": [oops'`))
	outcome := r.Scan(context.Background(), ".")

	assert.Empty(t, outcome.Findings)
	require.Len(t, outcome.Errors, 1)
	assert.Contains(t, outcome.Errors[0], "JSON parse error:")
}
