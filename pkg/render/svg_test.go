package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reportforge/reportforge/pkg/chart"
	"github.com/reportforge/reportforge/pkg/metrics"
)

func TestConvergenceSVG(t *testing.T) {
	t.Parallel()
	c := chart.NewConvergence([]float64{85, 92, 98, 100, 100.5}, 100)
	svg := ConvergenceSVG(c)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `viewBox="0 0 400 200"`)
	assert.Contains(t, svg, "Target: $100.0")
	assert.Contains(t, svg, "Simulation Iterations (thousands)")

	// Dashed reference line sits at the window midpoint.
	assert.Contains(t, svg, `y1="95.0" x2="400.0" y2="95.0"`)
	assert.Contains(t, svg, `stroke-dasharray="8,4"`)

	// Polyline, area fill, and both end markers.
	assert.Equal(t, 2, strings.Count(svg, "<path"))
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, colorRed.Hex())
	assert.Contains(t, svg, colorGreen.Hex())

	// Window labels bracket the target.
	assert.Contains(t, svg, ">$120<")
	assert.Contains(t, svg, ">$100<")
	assert.Contains(t, svg, ">$80<")
}

func TestConvergenceSVGNoPath(t *testing.T) {
	t.Parallel()
	svg := ConvergenceSVG(chart.NewConvergence([]float64{100}, 100))

	// Axes and the reference line still draw; nothing else does.
	assert.NotContains(t, svg, "<path")
	assert.NotContains(t, svg, "<circle")
	assert.Contains(t, svg, "Target: $100.0")
}

func TestHistogramSVG(t *testing.T) {
	t.Parallel()
	samples := []float64{90, 91, 95, 100, 100, 101, 105, 110}
	h := chart.NewHistogram(samples)
	svg := HistogramSVG(h)

	assert.Contains(t, svg, `viewBox="0 0 400 200"`)
	assert.Contains(t, svg, ">Freq<")
	assert.Contains(t, svg, ">Price Distribution<")

	// One rect per non-empty bin.
	nonEmpty := 0
	for _, c := range h.Counts {
		if c > 0 {
			nonEmpty++
		}
	}
	assert.Equal(t, nonEmpty, strings.Count(svg, "<rect"))
}

func TestHistogramSVGIdenticalSamples(t *testing.T) {
	t.Parallel()
	svg := HistogramSVG(chart.NewHistogram([]float64{100, 100, 100}))

	// The collapsed range puts everything in bin 0: exactly one bar.
	assert.Equal(t, 1, strings.Count(svg, "<rect"))
}

func TestSensitivityBarsSVG(t *testing.T) {
	t.Parallel()
	s := chart.NewSensitivityBars(metrics.Sensitivities{
		Delta: 0.55,
		Gamma: 0.02,
		Vega:  0.25,
		Theta: -0.05,
		Rho:   0.15,
	})
	svg := SensitivityBarsSVG(s)

	assert.Contains(t, svg, `viewBox="0 0 400 180"`)
	for _, label := range []string{"Delta", "Gamma", "Vega", "Theta", "Rho"} {
		assert.Contains(t, svg, ">"+label+"<")
	}

	// Display values carry the x10 rescale for Gamma and |Theta|.
	assert.Contains(t, svg, ">0.5500<")
	assert.Contains(t, svg, ">0.2000<")
	assert.Contains(t, svg, ">0.5000<")

	// Each greek resolves its own palette color.
	for _, tag := range []string{"delta", "gamma", "vega", "theta", "rho"} {
		assert.Contains(t, svg, ChartColor(tag).Hex())
	}
	assert.Equal(t, 5, strings.Count(svg, "<rect"))
}

func TestSensitivityBarWidthCap(t *testing.T) {
	t.Parallel()
	s := chart.NewSensitivityBars(metrics.Sensitivities{Delta: 4.0})
	svg := SensitivityBarsSVG(s)

	// A huge magnitude clamps to the full bar span.
	assert.Contains(t, svg, `width="250.0"`)
}
