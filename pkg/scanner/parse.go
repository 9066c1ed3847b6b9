package scanner

import (
	"fmt"

	"github.com/reportforge/reportforge/pkg/finding"
	"github.com/reportforge/reportforge/pkg/jsonutil"
)

// semgrepOutput mirrors the slice of semgrep's JSON schema the pipeline
// reads: one record per finding plus scanner-side errors.
type semgrepOutput struct {
	Results []semgrepResult `json:"results"`
	Errors  []semgrepError  `json:"errors"`
}

type semgrepResult struct {
	CheckID string `json:"check_id"`
	Path    string `json:"path"`
	Start   struct {
		Line int `json:"line"`
	} `json:"start"`
	Extra struct {
		Severity string `json:"severity"`
		Message  string `json:"message"`
	} `json:"extra"`
}

type semgrepError struct {
	Message string `json:"message"`
}

// Parse decodes raw semgrep JSON into an outcome. Unknown severities
// fold to INFO at this boundary, and records with a duplicate
// fingerprint (registry rulesets overlap) collapse to their first
// occurrence. Input order is preserved otherwise.
func Parse(raw []byte) (finding.Outcome, error) {
	var out semgrepOutput
	if err := jsonutil.Unmarshal(raw, &out); err != nil {
		return finding.Outcome{}, fmt.Errorf("%w: %v", ErrOutputParse, err)
	}

	findings := make([]finding.Finding, 0, len(out.Results))
	for _, r := range out.Results {
		findings = append(findings, finding.Finding{
			CheckID:  r.CheckID,
			Severity: finding.ParseSeverity(r.Extra.Severity),
			Message:  r.Extra.Message,
			FilePath: r.Path,
			Line:     r.Start.Line,
		})
	}

	outcome := finding.Outcome{Findings: finding.Dedup(findings)}
	for _, e := range out.Errors {
		outcome.Errors = append(outcome.Errors, e.Message)
	}
	return outcome, nil
}
