package chart

// Convergence chart layout. The plot area spans x in [50, 400] and
// y in [20, 170]; the visible price window is target +/- 20.
const (
	convXOrigin = 50.0
	convXStep   = 14.0
	convYTop    = 20.0
	convYBottom = 170.0
	convYSpan   = 140.0
	convWindow  = 20.0

	// ConvergenceTargetY is the canvas y of the dashed target reference
	// line: the window midpoint, halfway down the 140-unit plot area.
	ConvergenceTargetY = 95.0

	// MarkerRadius is the radius of the start and end markers.
	MarkerRadius = 4.0
)

// Convergence is the geometry of one convergence line chart: the
// trajectory polyline, a dashed reference line at the target price, and
// start/end markers on the first and last points.
type Convergence struct {
	// Points is the trajectory polyline. Empty or single-point
	// trajectories yield no drawable path; renderers skip the line,
	// the area fill, and the markers.
	Points []Point `json:"points"`

	// Target is the price the trajectory converges to, shown on the
	// reference-line label and the mid y-axis label.
	Target float64 `json:"target"`
}

// NewConvergence maps a trajectory onto the canvas. Value i lands at
// x = 50 + i*14; y maps the window [target-20, target+20] onto the plot
// area with the SVG-inverted axis, clamped to the area so outliers pin
// to the chart edge instead of escaping it.
func NewConvergence(trajectory []float64, target float64) Convergence {
	points := make([]Point, 0, len(trajectory))
	for i, v := range trajectory {
		y := convYBottom - ((v-(target-convWindow))/(2*convWindow))*convYSpan
		points = append(points, Point{
			X: convXOrigin + float64(i)*convXStep,
			Y: clamp(y, convYTop, convYBottom),
		})
	}
	return Convergence{Points: points, Target: target}
}

// HasPath reports whether there are enough points to draw a line.
// Fewer than two is a valid no-op chart, not an error.
func (c Convergence) HasPath() bool {
	return len(c.Points) >= 2
}

// PriceHigh is the top y-axis label value.
func (c Convergence) PriceHigh() float64 { return c.Target + convWindow }

// PriceLow is the bottom y-axis label value.
func (c Convergence) PriceLow() float64 { return c.Target - convWindow }
