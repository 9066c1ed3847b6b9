package finding

import "github.com/reportforge/reportforge/pkg/defaults"

// Buckets holds findings grouped by severity, indexed by the Severity
// enum. Input order is preserved within each bucket.
type Buckets [severityCount][]Finding

// Categorize folds findings into severity buckets. Out-of-range
// severities fold into the Info bucket, so the result is always a
// partition of the input: no finding is dropped or duplicated.
func Categorize(findings []Finding) Buckets {
	var b Buckets
	for _, f := range findings {
		s := f.Severity
		if !s.IsValid() {
			s = Info
		}
		b[s] = append(b[s], f)
	}
	return b
}

// Count returns the number of findings in the given bucket.
func (b Buckets) Count(s Severity) int {
	if !s.IsValid() {
		return 0
	}
	return len(b[s])
}

// Total returns the number of findings across all buckets.
func (b Buckets) Total() int {
	n := 0
	for _, bucket := range b {
		n += len(bucket)
	}
	return n
}

// Display returns the bucket bounded to the per-severity display cap,
// plus the number of findings the cap hid. Overflow is display-only;
// Count and Total keep seeing every finding.
func (b Buckets) Display(s Severity) (shown []Finding, overflow int) {
	if !s.IsValid() {
		return nil, 0
	}
	bucket := b[s]
	if len(bucket) <= defaults.FindingDisplayCap {
		return bucket, 0
	}
	return bucket[:defaults.FindingDisplayCap], len(bucket) - defaults.FindingDisplayCap
}
