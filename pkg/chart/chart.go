// Package chart maps numeric series onto pixel-space vector geometry
// for three chart kinds: convergence line, frequency histogram, and
// sensitivity bar chart. Every function is pure: numbers in, plain
// coordinate structs out. No markup is produced here; the render
// backends paint the same geometry as SVG or PDF primitives.
//
// Charts live on fixed logical canvases (defaults.ChartWidth by
// defaults.ChartHeight, the sensitivity chart slightly shorter). The
// renderers scale these units, never redefine them.
package chart

// Point is one vertex of a polyline in canvas coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bar is one filled rectangle in canvas coordinates.
type Bar struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
