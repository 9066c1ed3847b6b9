package finding

import (
	"fmt"
	"testing"
)

func mkFindings(counts map[Severity]int) []Finding {
	var out []Finding
	for _, s := range Severities() {
		for i := 0; i < counts[s]; i++ {
			out = append(out, Finding{
				CheckID:  fmt.Sprintf("%s-rule-%d", s, i),
				Severity: s,
				FilePath: "app.go",
				Line:     i + 1,
			})
		}
	}
	return out
}

func TestCategorizeIsPartition(t *testing.T) {
	t.Parallel()

	findings := mkFindings(map[Severity]int{
		Critical: 3, High: 7, Medium: 0, Low: 25, Info: 2,
	})

	b := Categorize(findings)
	if b.Total() != len(findings) {
		t.Errorf("Total() = %d, want %d (partition property)", b.Total(), len(findings))
	}
	if b.Count(Critical) != 3 || b.Count(High) != 7 || b.Count(Medium) != 0 ||
		b.Count(Low) != 25 || b.Count(Info) != 2 {
		t.Errorf("bucket counts = %d/%d/%d/%d/%d",
			b.Count(Critical), b.Count(High), b.Count(Medium), b.Count(Low), b.Count(Info))
	}
}

func TestCategorizePreservesOrder(t *testing.T) {
	t.Parallel()

	findings := []Finding{
		{CheckID: "h-1", Severity: High},
		{CheckID: "c-1", Severity: Critical},
		{CheckID: "h-2", Severity: High},
		{CheckID: "h-3", Severity: High},
	}

	b := Categorize(findings)
	high := b[High]
	if len(high) != 3 {
		t.Fatalf("HIGH bucket size = %d, want 3", len(high))
	}
	for i, want := range []string{"h-1", "h-2", "h-3"} {
		if high[i].CheckID != want {
			t.Errorf("HIGH[%d] = %s, want %s", i, high[i].CheckID, want)
		}
	}
}

func TestCategorizeFoldsUnknown(t *testing.T) {
	t.Parallel()

	findings := []Finding{
		{CheckID: "weird", Severity: Severity(42)},
		{CheckID: "plain", Severity: Info},
	}

	b := Categorize(findings)
	if b.Count(Info) != 2 {
		t.Errorf("INFO bucket = %d, want 2 (out-of-range folds in)", b.Count(Info))
	}
	if b.Total() != 2 {
		t.Errorf("Total() = %d, want 2", b.Total())
	}
}

func TestDisplayCap(t *testing.T) {
	t.Parallel()

	t.Run("under cap shows everything", func(t *testing.T) {
		b := Categorize(mkFindings(map[Severity]int{Critical: 1}))
		shown, overflow := b.Display(Critical)
		if len(shown) != 1 || overflow != 0 {
			t.Errorf("Display() = %d shown / %d overflow, want 1/0", len(shown), overflow)
		}
	})

	t.Run("at cap shows everything", func(t *testing.T) {
		b := Categorize(mkFindings(map[Severity]int{Low: 20}))
		shown, overflow := b.Display(Low)
		if len(shown) != 20 || overflow != 0 {
			t.Errorf("Display() = %d shown / %d overflow, want 20/0", len(shown), overflow)
		}
	})

	t.Run("over cap truncates and counts overflow", func(t *testing.T) {
		b := Categorize(mkFindings(map[Severity]int{Low: 25}))
		shown, overflow := b.Display(Low)
		if len(shown) != 20 {
			t.Errorf("Display() shows %d, want 20", len(shown))
		}
		if overflow != 5 {
			t.Errorf("overflow = %d, want 5", overflow)
		}
		if shown[0].CheckID != "LOW-rule-0" {
			t.Error("Display() must keep the first findings, not an arbitrary subset")
		}
	})
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		counts   map[Severity]int
		want     Status
		wantExit int
	}{
		{"empty is clean", nil, StatusClean, 0},
		{"info and low only", map[Severity]int{Low: 3, Info: 9}, StatusClean, 0},
		{"medium stays clean", map[Severity]int{Medium: 4}, StatusClean, 0},
		{"high without critical", map[Severity]int{High: 2, Low: 1}, StatusHigh, 1},
		{"critical wins", map[Severity]int{Critical: 1, High: 5}, StatusCritical, 2},
		{"one critical among many low", map[Severity]int{Critical: 1, Low: 25}, StatusCritical, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			findings := mkFindings(tt.counts)
			got := StatusOf(findings)
			if got != tt.want {
				t.Errorf("StatusOf() = %s, want %s", got, tt.want)
			}
			if got.ExitCode() != tt.wantExit {
				t.Errorf("ExitCode() = %d, want %d", got.ExitCode(), tt.wantExit)
			}
		})
	}
}

func TestStatusIgnoresTruncation(t *testing.T) {
	t.Parallel()

	// The 21st finding is the only critical one; display truncation must
	// not hide it from the status derivation.
	findings := mkFindings(map[Severity]int{Low: 30})
	findings = append(findings, Finding{CheckID: "c-1", Severity: Critical})

	if got := StatusOf(findings); got != StatusCritical {
		t.Errorf("StatusOf() = %s, want CRITICAL", got)
	}
}
