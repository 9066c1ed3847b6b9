package render

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/reportforge/reportforge/pkg/chart"
	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/document"
	"github.com/reportforge/reportforge/pkg/finding"
	"github.com/reportforge/reportforge/pkg/metrics"
)

var testMeta = document.Meta{
	ReportID:    "run-5c1f",
	GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	ToolVersion: defaults.Version,
}

// pdfResult holds a generated PDF and provides semantic assertions.
type pdfResult struct {
	t      *testing.T
	raw    []byte
	reader *bytes.Reader
}

func generatePDF(t *testing.T, config PDFConfig, doc *document.Document) pdfResult {
	t.Helper()
	buf := &bytes.Buffer{}
	r := NewPDFRenderer(buf, config)
	r.noCompress = true // disable stream compression so text is searchable in raw bytes

	if err := RenderDocument(r, doc); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	raw := buf.Bytes()
	return pdfResult{t: t, raw: raw, reader: bytes.NewReader(raw)}
}

// assertValid validates the PDF structure using pdfcpu.
func (p *pdfResult) assertValid() {
	p.t.Helper()
	if err := pdfapi.Validate(p.reader, nil); err != nil {
		p.t.Errorf("PDF validation failed: %v", err)
	}
	p.reader.Seek(0, 0)
}

// assertPageCount checks the exact number of pages.
func (p *pdfResult) assertPageCount(expected int) {
	p.t.Helper()
	p.reader.Seek(0, 0)
	count, err := pdfapi.PageCount(p.reader, nil)
	if err != nil {
		p.t.Fatalf("PageCount failed: %v", err)
	}
	if count != expected {
		p.t.Errorf("page count = %d, want %d", count, expected)
	}
}

// assertPageCountAtLeast checks minimum page count.
func (p *pdfResult) assertPageCountAtLeast(min int) {
	p.t.Helper()
	p.reader.Seek(0, 0)
	count, err := pdfapi.PageCount(p.reader, nil)
	if err != nil {
		p.t.Fatalf("PageCount failed: %v", err)
	}
	if count < min {
		p.t.Errorf("page count = %d, want at least %d", count, min)
	}
}

// assertContainsText checks that the raw PDF bytes contain the given
// text. fpdf encodes Helvetica text as literal bytes in content streams,
// escaping backslashes and parentheses per the PDF string syntax, so the
// needle is escaped the same way before searching.
func (p *pdfResult) assertContainsText(text string) {
	p.t.Helper()
	escaped := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`).Replace(text)
	if !bytes.Contains(p.raw, []byte(escaped)) {
		p.t.Errorf("PDF does not contain text %q", text)
	}
}

func (p *pdfResult) assertMinSize(n int) {
	p.t.Helper()
	if len(p.raw) < n {
		p.t.Errorf("PDF size = %d bytes, want at least %d", len(p.raw), n)
	}
}

// --- Fixtures ---

func makeFinding(id string, sev finding.Severity, line int) finding.Finding {
	return finding.Finding{
		CheckID:  id,
		Severity: sev,
		Message:  "Detected use of a raw SQL string built from user input",
		FilePath: "app/db/query.py",
		Line:     line,
	}
}

func findingsDoc(outcome finding.Outcome) *document.Document {
	return document.AssembleFindings(outcome, testMeta)
}

func validationDoc(seed int64) *document.Document {
	rng := rand.New(rand.NewSource(seed))
	result := metrics.Simulate(rng)
	summary, err := metrics.Summarize(result.Prices)
	if err != nil {
		panic(err)
	}
	traj := metrics.Trajectory(rng, summary.Mean, defaults.TrajectoryIterations)
	charts := document.ValidationCharts{
		Convergence:   chart.NewConvergence(traj, summary.Mean),
		Histogram:     chart.NewHistogram(result.Prices),
		Sensitivities: chart.NewSensitivityBars(result.Sensitivities),
	}
	return document.AssembleValidation(result, summary, charts, testMeta)
}

// --- Semantic tests ---

func TestPDFFindingsReportValid(t *testing.T) {
	t.Parallel()
	outcome := finding.Outcome{Findings: []finding.Finding{
		makeFinding("python.lang.security.sqli", finding.Critical, 42),
		makeFinding("python.lang.security.xss", finding.High, 120),
	}}
	p := generatePDF(t, PDFConfig{}, findingsDoc(outcome))

	p.assertValid()
	p.assertMinSize(2000)
	p.assertContainsText("Security Scan Report")
	p.assertContainsText("Executive Summary")
	p.assertContainsText("python.lang.security.sqli")
	p.assertContainsText("app/db/query.py:42")
}

func TestPDFCleanScanSinglePage(t *testing.T) {
	t.Parallel()
	p := generatePDF(t, PDFConfig{}, findingsDoc(finding.Outcome{}))

	p.assertValid()
	p.assertPageCount(1)
	p.assertContainsText("No security issues found!")
}

func TestPDFPageBreaks(t *testing.T) {
	t.Parallel()
	outcome := finding.Outcome{
		Findings: []finding.Finding{makeFinding("rule-1", finding.Medium, 7)},
		Errors:   []string{"Scan timed out"},
	}
	// Summary page, detail page, error page.
	p := generatePDF(t, PDFConfig{}, findingsDoc(outcome))

	p.assertValid()
	p.assertPageCount(3)
	p.assertContainsText("Scan Errors")
	p.assertContainsText("Scan timed out")
}

func TestPDFOverflowNote(t *testing.T) {
	t.Parallel()
	var findings []finding.Finding
	for i := 0; i < defaults.FindingDisplayCap+5; i++ {
		findings = append(findings, makeFinding(fmt.Sprintf("rule-%03d", i), finding.Low, i+1))
	}
	p := generatePDF(t, PDFConfig{}, findingsDoc(finding.Outcome{Findings: findings}))

	p.assertValid()
	p.assertContainsText("LOW Severity (25 findings)")
	p.assertContainsText("... and 5 more LOW findings")
}

func TestPDFValidationReport(t *testing.T) {
	t.Parallel()
	p := generatePDF(t, PDFConfig{}, validationDoc(7))

	p.assertValid()
	p.assertPageCountAtLeast(2)
	p.assertContainsText("Monte Carlo Validation Report")
	p.assertContainsText("Statistical Analysis")
	p.assertContainsText("Estimator Convergence")
	p.assertContainsText("Risk Metrics")
	p.assertContainsText("Methodology")
	p.assertContainsText("Mersenne Twister (MT19937)")
}

func TestPDFFooterText(t *testing.T) {
	t.Parallel()
	p := generatePDF(t, PDFConfig{FooterText: "Acme Risk Engineering"}, findingsDoc(finding.Outcome{}))

	p.assertValid()
	p.assertContainsText("Acme Risk Engineering")
}

// Rendering the same document twice must produce identical bytes: the
// creation date comes from the document, not the wall clock.
func TestPDFDeterministic(t *testing.T) {
	t.Parallel()
	first := generatePDF(t, PDFConfig{}, validationDoc(11))
	second := generatePDF(t, PDFConfig{}, validationDoc(11))

	if !bytes.Equal(first.raw, second.raw) {
		t.Error("two renders of the same document differ")
	}
}
