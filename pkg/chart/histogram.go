package chart

import "github.com/reportforge/reportforge/pkg/defaults"

// Histogram layout. Bars start at x=40 and fill 360 units of width;
// the baseline sits at y=170 with up to 140 units of bar height.
const (
	histXOrigin  = 40.0
	histSpan     = 360.0
	histYBase    = 170.0
	histMaxBarH  = 140.0
	histBarGap   = 2.0
	histCaptionY = 195.0
)

// Histogram is the geometry of one frequency histogram: fixed-count
// equal-width bins over [min, max] plus the bars scaled to the tallest
// bin.
type Histogram struct {
	// Counts holds the per-bin sample counts. Their sum is always the
	// input sample count: the boundary sample equal to max clamps into
	// the last bin rather than overflowing past it.
	Counts []int `json:"counts"`

	// BinWidth is the value-space width of one bin. Zero when every
	// sample is identical.
	BinWidth float64 `json:"bin_width"`

	// Bars is the drawable geometry, one bar per bin. Heights are
	// relative to the tallest bin, not absolute counts.
	Bars []Bar `json:"bars"`
}

// NewHistogram partitions samples into defaults.HistogramBins
// equal-width bins and derives the bar geometry. An empty sample set
// yields empty bins and no bars. If all samples are identical the
// value range collapses; every sample then lands in bin 0 by
// definition rather than dividing by zero.
func NewHistogram(samples []float64) Histogram {
	h := Histogram{Counts: make([]int, defaults.HistogramBins)}
	if len(samples) == 0 {
		return h
	}

	min, max := samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	h.BinWidth = (max - min) / float64(defaults.HistogramBins)

	for _, v := range samples {
		idx := 0
		if h.BinWidth > 0 {
			idx = int((v - min) / h.BinWidth)
			if idx >= defaults.HistogramBins {
				idx = defaults.HistogramBins - 1
			}
		}
		h.Counts[idx]++
	}

	maxCount := 0
	for _, c := range h.Counts {
		if c > maxCount {
			maxCount = c
		}
	}

	barWidth := histSpan / float64(defaults.HistogramBins)
	h.Bars = make([]Bar, defaults.HistogramBins)
	for i, c := range h.Counts {
		height := 0.0
		if maxCount > 0 {
			height = float64(c) / float64(maxCount) * histMaxBarH
		}
		h.Bars[i] = Bar{
			X:      histXOrigin + float64(i)*barWidth,
			Y:      histYBase - height,
			Width:  barWidth - histBarGap,
			Height: height,
		}
	}
	return h
}

// Total returns the sum of all bin counts.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}
