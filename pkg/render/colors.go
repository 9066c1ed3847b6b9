package render

import "github.com/reportforge/reportforge/pkg/finding"

// RGB is one palette color. Hex forms feed the HTML backend, the
// components feed fpdf.
type RGB struct {
	R, G, B int
}

// Hex returns the #rrggbb form.
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]int{c.R, c.G, c.B} {
		out[1+2*i] = digits[(v>>4)&0xf]
		out[2+2*i] = digits[v&0xf]
	}
	return string(out)
}

// Severity palette, shared by both backends so the same finding reads
// the same color in PDF and HTML.
var severityColors = [...]RGB{
	finding.Critical: {0xc0, 0x39, 0x2b},
	finding.High:     {0xe7, 0x4c, 0x3c},
	finding.Medium:   {0xf3, 0x9c, 0x12},
	finding.Low:      {0xf1, 0xc4, 0x0f},
	finding.Info:     {0x34, 0x98, 0xdb},
}

// SeverityColor returns the palette color for s.
func SeverityColor(s finding.Severity) RGB {
	if !s.IsValid() {
		s = finding.Info
	}
	return severityColors[s]
}

// Chart color tags, resolved per backend from the semantic tag the
// geometry carries.
var chartColors = map[string]RGB{
	"delta": {0x34, 0x98, 0xdb},
	"gamma": {0x9b, 0x59, 0xb6},
	"vega":  {0xe7, 0x4c, 0x3c},
	"theta": {0xf3, 0x9c, 0x12},
	"rho":   {0x1a, 0xbc, 0x9c},
}

// chartGray is the fallback for unknown color tags.
var chartGray = RGB{0x95, 0xa5, 0xa6}

// ChartColor resolves a chart color tag.
func ChartColor(tag string) RGB {
	if c, ok := chartColors[tag]; ok {
		return c
	}
	return chartGray
}

// Shared report chrome colors.
var (
	colorSlate     = RGB{0x2c, 0x3e, 0x50} // headings
	colorTableHead = RGB{0x34, 0x49, 0x5e} // table header fill
	colorZebra     = RGB{0xf8, 0xf9, 0xfa} // alternating row fill
	colorCardLabel = RGB{0xec, 0xf0, 0xf1} // finding-card label column
	colorMutedText = RGB{0x66, 0x66, 0x66}
	colorGreen     = RGB{0x27, 0xae, 0x60}
	colorRed       = RGB{0xe7, 0x4c, 0x3c}
	colorLine      = RGB{0x29, 0x80, 0xb9} // convergence polyline
	colorAxis      = RGB{0xcc, 0xcc, 0xcc}
)
