package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reportforge/reportforge/pkg/finding"
)

func TestClosingLine(t *testing.T) {
	mk := func(sevs ...finding.Severity) []finding.Finding {
		findings := make([]finding.Finding, len(sevs))
		for i, s := range sevs {
			findings[i] = finding.Finding{CheckID: "check", Severity: s}
		}
		return findings
	}

	tests := []struct {
		name     string
		findings []finding.Finding
		want     string
	}{
		{
			name:     "critical counts only the critical bucket",
			findings: mk(finding.Critical, finding.Critical, finding.High),
			want:     "Found 2 CRITICAL severity issues",
		},
		{
			name:     "high without critical",
			findings: mk(finding.High, finding.Medium),
			want:     "Found 1 HIGH severity issues",
		},
		{
			name:     "medium and below read as clean",
			findings: mk(finding.Medium, finding.Low, finding.Info),
			want:     "No critical or high severity issues found",
		},
		{
			name: "empty scan",
			want: "No critical or high severity issues found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := finding.StatusOf(tt.findings)
			buckets := finding.Categorize(tt.findings)
			assert.Equal(t, tt.want, closingLine(status, buckets))
		})
	}
}
