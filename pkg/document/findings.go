package document

import (
	"fmt"

	"github.com/reportforge/reportforge/pkg/finding"
)

// AssembleFindings composes a scan outcome into the findings report
// structure: executive summary first, then per-severity detail sections
// in priority order, then the scan-error section when the scanner
// reported diagnostics. Purely structural; no I/O.
func AssembleFindings(outcome finding.Outcome, meta Meta) *Document {
	doc := &Document{Meta: meta}
	buckets := finding.Categorize(outcome.Findings)

	doc.append(
		Title{Text: "Security Scan Report"},
		Subtitle{Text: "Generated on " + meta.GeneratedAt.Format(timestampLayout)},
		SectionHeading{Text: "Executive Summary"},
		summaryCountsTable(buckets),
	)

	if len(outcome.Findings) == 0 {
		doc.append(Note{Text: "No security issues found!", Style: NoteCelebration})
	} else {
		doc.append(PageBreak{}, SectionHeading{Text: "Detailed Findings"})
		for _, sev := range finding.Severities() {
			appendBucket(doc, buckets, sev)
		}
	}

	if len(outcome.Errors) > 0 {
		doc.append(PageBreak{}, SectionHeading{Text: "Scan Errors"})
		for _, msg := range outcome.Errors {
			doc.append(Note{Text: msg, Style: NoteBullet})
		}
	}

	return doc
}

// summaryCountsTable builds the executive-summary count grid from the
// full buckets, before any display truncation.
func summaryCountsTable(b finding.Buckets) SummaryTable {
	rows := [][]string{
		{"Total Findings", fmt.Sprintf("%d", b.Total())},
	}
	for _, sev := range finding.Severities() {
		rows = append(rows, []string{sev.String(), fmt.Sprintf("%d", b.Count(sev))})
	}
	return SummaryTable{
		Header: []string{"Metric", "Count"},
		Rows:   rows,
	}
}

// appendBucket emits one severity section: heading, capped finding
// cards, and at most one overflow note. Empty buckets emit nothing.
func appendBucket(doc *Document, buckets finding.Buckets, sev finding.Severity) {
	total := buckets.Count(sev)
	if total == 0 {
		return
	}

	sevCopy := sev
	doc.append(SectionHeading{
		Text:     fmt.Sprintf("%s Severity (%d findings)", sev, total),
		Severity: &sevCopy,
	})

	shown, overflow := buckets.Display(sev)
	for _, f := range shown {
		doc.append(FindingCard{Finding: f})
	}
	if overflow > 0 {
		doc.append(Note{
			Text:  fmt.Sprintf("... and %d more %s findings", overflow, sev),
			Style: NotePlain,
		})
	}
}
