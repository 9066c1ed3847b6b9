package finding

import (
	"fmt"
	"strconv"

	"github.com/spaolacci/murmur3"

	"github.com/reportforge/reportforge/pkg/defaults"
)

// Finding is one scanner result. Findings are immutable once parsed;
// display helpers derive bounded views without mutating the record.
type Finding struct {
	CheckID  string   `json:"check_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	FilePath string   `json:"file_path"`
	Line     int      `json:"line"`
}

// Location formats the file position as path:line. A non-positive line
// number renders as the "unknown" sentinel.
func (f Finding) Location() string {
	if f.Line <= 0 {
		return f.FilePath + ":unknown"
	}
	return fmt.Sprintf("%s:%d", f.FilePath, f.Line)
}

// DisplayMessage returns the message bounded to the display length
// limit. Longer messages are cut and marked with an ellipsis; the
// stored message is untouched.
func (f Finding) DisplayMessage() string {
	return truncate(f.Message, defaults.MessageMaxLen)
}

// Fingerprint derives a stable identity hash from the fields that make
// two records the same issue: rule, file, and line. Registry rulesets
// overlap, so the same issue can arrive more than once per scan.
func (f Finding) Fingerprint() string {
	h := murmur3.New64()
	h.Write([]byte(f.CheckID))
	h.Write([]byte{'|'})
	h.Write([]byte(f.FilePath))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.Itoa(f.Line)))
	return strconv.FormatUint(h.Sum64(), 16)
}

// Dedup drops findings whose fingerprint already appeared, keeping the
// first occurrence and the input order.
func Dedup(findings []Finding) []Finding {
	if len(findings) < 2 {
		return findings
	}
	seen := make(map[string]struct{}, len(findings))
	out := findings[:0:0]
	for _, f := range findings {
		fp := f.Fingerprint()
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, f)
	}
	return out
}

// Outcome is everything one scanner invocation produced: parsed
// findings plus diagnostic error strings, both in arrival order.
// Produced once per scan and never mutated afterwards.
type Outcome struct {
	Findings []Finding `json:"findings"`
	Errors   []string  `json:"errors"`
}

// truncate bounds s to max runes, replacing the tail with "..." when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
