// Package finding provides the scanner finding model shared by the
// scanner boundary, the document assembler, and the layout backends.
//
// Severity is an integer enum rather than a string so that bucket
// grouping is a pure fold into a fixed-size array indexed by severity.
// String forms exist only at the parse and render boundaries.
//
// Usage:
//
//	buckets := finding.Categorize(outcome.Findings)
//	shown, overflow := buckets.Display(finding.Critical)
//	os.Exit(finding.StatusOf(outcome.Findings).ExitCode())
package finding
