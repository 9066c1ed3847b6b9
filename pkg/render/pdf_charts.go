package render

import (
	"fmt"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/reportforge/reportforge/pkg/chart"
	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/document"
)

// pdfChartScale converts logical chart units to millimeters: the
// 400-unit canvas becomes 160 mm, which fits the Letter content width.
const pdfChartScale = 0.4

// renderChart paints one chart block with fpdf primitives from the
// same geometry the SVG painter consumes.
func (r *PDFRenderer) renderChart(pdf *gofpdf.Fpdf, b document.Chart) {
	height := float64(defaults.ChartHeight)
	if b.Spec.Sensitivities != nil {
		height = float64(defaults.SensitivityChartHeight)
	}
	r.ensureSpace(pdf, height*pdfChartScale+14)

	if b.Caption != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(colorSlate.R, colorSlate.G, colorSlate.B)
		pdf.CellFormat(0, 8, r.tr(b.Caption), "", 1, "L", false, 0, "")
	}

	// Chart origin, centered in the content area.
	pageW, _ := pdf.GetPageSize()
	chartW := float64(defaults.ChartWidth) * pdfChartScale
	x0 := r.config.Margin + (pageW-2*r.config.Margin-chartW)/2
	y0 := pdf.GetY()

	// Canvas background.
	pdf.SetFillColor(colorZebra.R, colorZebra.G, colorZebra.B)
	pdf.Rect(x0, y0, chartW, height*pdfChartScale, "F")

	switch {
	case b.Spec.Convergence != nil:
		r.paintConvergence(pdf, *b.Spec.Convergence, x0, y0)
	case b.Spec.Histogram != nil:
		r.paintHistogram(pdf, *b.Spec.Histogram, x0, y0)
	case b.Spec.Sensitivities != nil:
		r.paintSensitivityBars(pdf, *b.Spec.Sensitivities, x0, y0)
	}

	pdf.SetY(y0 + height*pdfChartScale + 4)
}

// cx / cy translate canvas units into page millimeters.
func cx(x0, v float64) float64 { return x0 + v*pdfChartScale }
func cy(y0, v float64) float64 { return y0 + v*pdfChartScale }

func (r *PDFRenderer) paintConvergence(pdf *gofpdf.Fpdf, c chart.Convergence, x0, y0 float64) {
	// Axes.
	pdf.SetDrawColor(colorAxis.R, colorAxis.G, colorAxis.B)
	pdf.SetLineWidth(0.2)
	pdf.Line(cx(x0, 50), cy(y0, 20), cx(x0, 50), cy(y0, 170))
	pdf.Line(cx(x0, 50), cy(y0, 170), cx(x0, 400), cy(y0, 170))

	// Dashed target reference.
	pdf.SetDrawColor(colorGreen.R, colorGreen.G, colorGreen.B)
	pdf.SetDashPattern([]float64{2.4, 1.2}, 0)
	pdf.Line(cx(x0, 50), cy(y0, chart.ConvergenceTargetY), cx(x0, 400), cy(y0, chart.ConvergenceTargetY))
	pdf.SetDashPattern([]float64{}, 0)

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(colorGreen.R, colorGreen.G, colorGreen.B)
	pdf.Text(cx(x0, 255), cy(y0, chart.ConvergenceTargetY)-1, fmt.Sprintf("Target: $%.1f", c.Target))

	// Y-axis price labels.
	pdf.SetTextColor(colorMutedText.R, colorMutedText.G, colorMutedText.B)
	pdf.Text(cx(x0, 5), cy(y0, 25), fmt.Sprintf("$%.0f", c.PriceHigh()))
	pdf.Text(cx(x0, 5), cy(y0, 98), fmt.Sprintf("$%.0f", c.Target))
	pdf.Text(cx(x0, 5), cy(y0, 173), fmt.Sprintf("$%.0f", c.PriceLow()))

	// X-axis caption and ticks.
	pdf.Text(cx(x0, 150), cy(y0, 195), "Simulation Iterations (thousands)")
	pdf.Text(cx(x0, 48), cy(y0, 185), "0")
	pdf.Text(cx(x0, 195), cy(y0, 185), "50k")
	pdf.Text(cx(x0, 345), cy(y0, 185), "100k")

	if !c.HasPath() {
		return
	}

	// Area fill under the curve, closed against the baseline.
	area := make([]gofpdf.PointType, 0, len(c.Points)+2)
	area = append(area, gofpdf.PointType{X: cx(x0, c.Points[0].X), Y: cy(y0, 170)})
	for _, p := range c.Points {
		area = append(area, gofpdf.PointType{X: cx(x0, p.X), Y: cy(y0, p.Y)})
	}
	area = append(area, gofpdf.PointType{X: cx(x0, c.Points[len(c.Points)-1].X), Y: cy(y0, 170)})

	pdf.SetAlpha(0.25, "Normal")
	pdf.SetFillColor(colorLine.R, colorLine.G, colorLine.B)
	pdf.Polygon(area, "F")
	pdf.SetAlpha(1, "Normal")

	// Polyline.
	pdf.SetDrawColor(colorLine.R, colorLine.G, colorLine.B)
	pdf.SetLineWidth(0.8)
	for i := 1; i < len(c.Points); i++ {
		pdf.Line(
			cx(x0, c.Points[i-1].X), cy(y0, c.Points[i-1].Y),
			cx(x0, c.Points[i].X), cy(y0, c.Points[i].Y),
		)
	}
	pdf.SetLineWidth(0.2)

	// Start marker red, end marker green.
	first, last := c.Points[0], c.Points[len(c.Points)-1]
	pdf.SetFillColor(colorRed.R, colorRed.G, colorRed.B)
	pdf.Circle(cx(x0, first.X), cy(y0, first.Y), chart.MarkerRadius*pdfChartScale, "F")
	pdf.SetFillColor(colorGreen.R, colorGreen.G, colorGreen.B)
	pdf.Circle(cx(x0, last.X), cy(y0, last.Y), chart.MarkerRadius*pdfChartScale, "F")
}

func (r *PDFRenderer) paintHistogram(pdf *gofpdf.Fpdf, h chart.Histogram, x0, y0 float64) {
	pdf.SetDrawColor(colorAxis.R, colorAxis.G, colorAxis.B)
	pdf.SetLineWidth(0.2)
	pdf.Line(cx(x0, 40), cy(y0, 30), cx(x0, 40), cy(y0, 170))
	pdf.Line(cx(x0, 40), cy(y0, 170), cx(x0, 400), cy(y0, 170))

	pdf.SetAlpha(0.7, "Normal")
	pdf.SetFillColor(colorGreen.R, colorGreen.G, colorGreen.B)
	for _, bar := range h.Bars {
		if bar.Height <= 0 {
			continue
		}
		pdf.Rect(cx(x0, bar.X), cy(y0, bar.Y), bar.Width*pdfChartScale, bar.Height*pdfChartScale, "F")
	}
	pdf.SetAlpha(1, "Normal")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(colorMutedText.R, colorMutedText.G, colorMutedText.B)
	pdf.Text(cx(x0, 10), cy(y0, 35), "Freq")
	pdf.Text(cx(x0, 165), cy(y0, 195), "Price Distribution")
}

func (r *PDFRenderer) paintSensitivityBars(pdf *gofpdf.Fpdf, s chart.SensitivityBars, x0, y0 float64) {
	for _, e := range s.Entries {
		c := ChartColor(e.ColorTag)

		pdf.SetAlpha(0.8, "Normal")
		pdf.SetFillColor(c.R, c.G, c.B)
		if e.Bar.Width > 0 {
			pdf.Rect(cx(x0, e.Bar.X), cy(y0, e.Bar.Y), e.Bar.Width*pdfChartScale, e.Bar.Height*pdfChartScale, "F")
		}
		pdf.SetAlpha(1, "Normal")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(51, 51, 51)
		pdf.Text(cx(x0, 10), cy(y0, e.Bar.Y+16), e.Label)

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(colorMutedText.R, colorMutedText.G, colorMutedText.B)
		pdf.Text(cx(x0, e.Bar.X+e.Bar.Width+10), cy(y0, e.Bar.Y+16), fmt.Sprintf("%.4f", e.Display))
	}
}
