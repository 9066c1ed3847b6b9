package render

import (
	"fmt"
	"strings"

	"github.com/reportforge/reportforge/pkg/chart"
	"github.com/reportforge/reportforge/pkg/defaults"
)

// SVG painters for the HTML backend. Each takes finished geometry and
// emits markup; no numeric decisions happen here.

// ConvergenceSVG paints a convergence chart as inline SVG.
func ConvergenceSVG(c chart.Convergence) string {
	var b strings.Builder
	openSVG(&b, defaults.ChartHeight)

	b.WriteString(`<defs><linearGradient id="convergenceGrad" x1="0%" y1="0%" x2="0%" y2="100%">` +
		`<stop offset="0%" stop-color="#2980b9" stop-opacity="0.3"/>` +
		`<stop offset="100%" stop-color="#2980b9" stop-opacity="0.05"/>` +
		`</linearGradient></defs>`)

	// Axes.
	line(&b, 50, 20, 50, 170, colorAxis.Hex(), 1, "")
	line(&b, 50, 170, 400, 170, colorAxis.Hex(), 1, "")

	// Dashed target reference.
	line(&b, 50, chart.ConvergenceTargetY, 400, chart.ConvergenceTargetY, colorGreen.Hex(), 1.5, `stroke-dasharray="8,4" opacity="0.6"`)
	text(&b, 255, chart.ConvergenceTargetY-3, 9, colorGreen.Hex(), "", fmt.Sprintf("Target: $%.1f", c.Target))

	if c.HasPath() {
		var path strings.Builder
		for i, p := range c.Points {
			if i == 0 {
				fmt.Fprintf(&path, "M %.1f,%.1f", p.X, p.Y)
			} else {
				fmt.Fprintf(&path, " L %.1f,%.1f", p.X, p.Y)
			}
		}
		first, last := c.Points[0], c.Points[len(c.Points)-1]

		// Area fill closed against the baseline, then the line itself.
		fmt.Fprintf(&b, `<path d="M %.1f,170 %s L %.1f,170 Z" fill="url(#convergenceGrad)"/>`,
			first.X, strings.TrimPrefix(path.String(), "M "), last.X)
		fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="2.5"/>`, path.String(), colorLine.Hex())

		// Start and end markers.
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>`, first.X, first.Y, chart.MarkerRadius, colorRed.Hex())
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.0f" fill="%s"/>`, last.X, last.Y, chart.MarkerRadius, colorGreen.Hex())
	}

	// Y-axis price labels.
	text(&b, 5, 25, 10, "#666", "", fmt.Sprintf("$%.0f", c.PriceHigh()))
	text(&b, 5, 98, 10, colorGreen.Hex(), `font-weight="bold"`, fmt.Sprintf("$%.0f", c.Target))
	text(&b, 5, 173, 10, "#666", "", fmt.Sprintf("$%.0f", c.PriceLow()))

	// X-axis caption and ticks.
	text(&b, 225, 195, 11, "#666", `text-anchor="middle"`, "Simulation Iterations (thousands)")
	text(&b, 50, 185, 9, "#999", `text-anchor="middle"`, "0")
	text(&b, 200, 185, 9, "#999", `text-anchor="middle"`, "50k")
	text(&b, 350, 185, 9, "#999", `text-anchor="middle"`, "100k")

	b.WriteString("</svg>")
	return b.String()
}

// HistogramSVG paints a frequency histogram as inline SVG.
func HistogramSVG(h chart.Histogram) string {
	var b strings.Builder
	openSVG(&b, defaults.ChartHeight)

	line(&b, 40, 30, 40, 170, colorAxis.Hex(), 1, "")
	line(&b, 40, 170, 400, 170, colorAxis.Hex(), 1, "")

	for _, bar := range h.Bars {
		if bar.Height <= 0 {
			continue
		}
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" opacity="0.7"/>`,
			bar.X, bar.Y, bar.Width, bar.Height, colorGreen.Hex())
	}

	text(&b, 10, 35, 11, "#666", "", "Freq")
	text(&b, 200, 195, 11, "#666", `text-anchor="middle"`, "Price Distribution")

	b.WriteString("</svg>")
	return b.String()
}

// SensitivityBarsSVG paints the sensitivity magnitude chart as inline
// SVG.
func SensitivityBarsSVG(s chart.SensitivityBars) string {
	var b strings.Builder
	openSVG(&b, defaults.SensitivityChartHeight)

	for _, e := range s.Entries {
		c := ChartColor(e.ColorTag)
		if e.Bar.Width > 0 {
			fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" opacity="0.8" rx="2"/>`,
				e.Bar.X, e.Bar.Y, e.Bar.Width, e.Bar.Height, c.Hex())
		}
		text(&b, 10, e.Bar.Y+16, 12, "#333", `font-weight="bold"`, e.Label)
		text(&b, e.Bar.X+e.Bar.Width+10, e.Bar.Y+16, 11, "#666", "", fmt.Sprintf("%.4f", e.Display))
	}

	b.WriteString("</svg>")
	return b.String()
}

func openSVG(b *strings.Builder, height int) {
	fmt.Fprintf(b, `<svg width="100%%" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg" style="background: %s; border-radius: 4px;">`,
		height, defaults.ChartWidth, height, colorZebra.Hex())
}

func line(b *strings.Builder, x1, y1, x2, y2 float64, stroke string, width float64, extra string) {
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%g"`, x1, y1, x2, y2, stroke, width)
	if extra != "" {
		b.WriteString(" " + extra)
	}
	b.WriteString("/>")
}

func text(b *strings.Builder, x, y float64, size int, fill, extra, content string) {
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-family="Arial" font-size="%d" fill="%s"`, x, y, size, fill)
	if extra != "" {
		b.WriteString(" " + extra)
	}
	b.WriteString(">")
	b.WriteString(content)
	b.WriteString("</text>")
}
