package chart

import (
	"math"

	"github.com/reportforge/reportforge/pkg/metrics"
)

// Sensitivity bar layout. Horizontal bars start at x=120, one row per
// entry, 22 units tall on a 32-unit pitch.
const (
	sensXOrigin  = 120.0
	sensYOrigin  = 30.0
	sensRowPitch = 32.0
	sensBarH     = 22.0
	sensMaxWidth = 250.0
	sensScale    = 250.0
)

// BarEntry is one labeled horizontal bar of the sensitivity chart.
type BarEntry struct {
	// Label is the sensitivity name (Delta, Gamma, ...).
	Label string `json:"label"`

	// Display is the value printed next to the bar. Gamma and Theta
	// carry their x10 display rescaling here; the stored model values
	// are never altered.
	Display float64 `json:"display"`

	// ColorTag names the semantic color (delta, gamma, vega, theta,
	// rho); each backend resolves it to its own palette.
	ColorTag string `json:"color_tag"`

	Bar Bar `json:"bar"`
}

// SensitivityBars is the geometry of the sensitivity magnitude chart.
type SensitivityBars struct {
	Entries []BarEntry `json:"entries"`
}

// NewSensitivityBars lays out one bar per sensitivity in fixed order.
// Each magnitude normalizes independently to min(|display|*250, 250)
// units of width. Gamma and Theta live on a much smaller scale than
// the others, so they are pre-scaled x10 for display only; Theta is
// additionally shown as its absolute value.
func NewSensitivityBars(s metrics.Sensitivities) SensitivityBars {
	rows := []struct {
		label    string
		display  float64
		colorTag string
	}{
		{"Delta", s.Delta, "delta"},
		{"Gamma", s.Gamma * 10, "gamma"},
		{"Vega", s.Vega, "vega"},
		{"Theta", math.Abs(s.Theta) * 10, "theta"},
		{"Rho", s.Rho, "rho"},
	}

	entries := make([]BarEntry, len(rows))
	for i, r := range rows {
		width := math.Min(math.Abs(r.display)*sensScale, sensMaxWidth)
		entries[i] = BarEntry{
			Label:    r.label,
			Display:  r.display,
			ColorTag: r.colorTag,
			Bar: Bar{
				X:      sensXOrigin,
				Y:      sensYOrigin + float64(i)*sensRowPitch,
				Width:  width,
				Height: sensBarH,
			},
		}
	}
	return SensitivityBars{Entries: entries}
}
