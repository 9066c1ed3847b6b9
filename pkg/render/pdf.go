package render

import (
	"fmt"
	"io"
	"sync"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/reportforge/reportforge/pkg/defaults"
	"github.com/reportforge/reportforge/pkg/document"
)

// Compile-time interface checks.
var (
	_ Renderer   = (*PDFRenderer)(nil)
	_ MetaWriter = (*PDFRenderer)(nil)
)

// PDFConfig configures the paginated PDF backend.
type PDFConfig struct {
	// PageSize is the fpdf page size name (default: "Letter").
	PageSize string

	// Orientation is "P" or "L" (default: "P").
	Orientation string

	// Margin is the page margin in millimeters (default: 19).
	Margin float64

	// FooterText renders on the left of every page footer.
	FooterText string
}

// PDFRenderer lays blocks out as a paginated flow document. Blocks
// buffer in memory; Close renders the complete PDF in one pass.
type PDFRenderer struct {
	w          io.Writer
	mu         sync.Mutex
	config     PDFConfig
	meta       document.Meta
	blocks     []document.Block
	noCompress bool // tests: keep text searchable in raw bytes

	// tr maps UTF-8 onto the cp1252 core-font encoding; set in Close.
	tr func(string) string
}

// NewPDFRenderer creates a PDF renderer writing to w. Zero-value
// config fields fall back to the canonical page defaults.
func NewPDFRenderer(w io.Writer, config PDFConfig) *PDFRenderer {
	if config.PageSize == "" {
		config.PageSize = defaults.PageSize
	}
	if config.Orientation == "" {
		config.Orientation = defaults.PageOrientation
	}
	if config.Margin <= 0 {
		config.Margin = defaults.PageMargin
	}
	return &PDFRenderer{w: w, config: config}
}

// WriteMeta records the run metadata embedded in the PDF info
// dictionary. The document's timestamp is used for the creation date
// so identical documents render to identical bytes.
func (r *PDFRenderer) WriteMeta(meta document.Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meta = meta
}

// WriteBlock buffers one block.
func (r *PDFRenderer) WriteBlock(b document.Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks = append(r.blocks, b)
	return nil
}

// Close renders all buffered blocks and writes the PDF.
func (r *PDFRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pdf := gofpdf.New(r.config.Orientation, "mm", r.config.PageSize, "")
	pdf.SetMargins(r.config.Margin, r.config.Margin, r.config.Margin)
	pdf.SetAutoPageBreak(true, r.config.Margin)
	pdf.SetCompression(!r.noCompress)
	if !r.meta.GeneratedAt.IsZero() {
		pdf.SetCreationDate(r.meta.GeneratedAt)
		pdf.SetModificationDate(r.meta.GeneratedAt)
	}
	pdf.SetTitle("reportforge report", true)
	r.tr = pdf.UnicodeTranslatorFromDescriptor("")

	footer := r.config.FooterText
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(colorMutedText.R, colorMutedText.G, colorMutedText.B)
		pdf.CellFormat(0, 5, r.tr(footer), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	for _, b := range r.blocks {
		r.renderBlock(pdf, b)
	}

	if err := pdf.Output(r.w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (r *PDFRenderer) renderBlock(pdf *gofpdf.Fpdf, block document.Block) {
	switch b := block.(type) {
	case document.Title:
		r.renderTitle(pdf, b)
	case document.Subtitle:
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(colorMutedText.R, colorMutedText.G, colorMutedText.B)
		pdf.CellFormat(0, 8, r.tr(b.Text), "", 1, "C", false, 0, "")
		pdf.Ln(6)
	case document.SectionHeading:
		r.renderSectionHeading(pdf, b)
	case document.SummaryTable:
		r.renderSummaryTable(pdf, b)
	case document.FindingCard:
		r.renderFindingCard(pdf, b)
	case document.Chart:
		r.renderChart(pdf, b)
	case document.Note:
		r.renderNote(pdf, b)
	case document.PageBreak:
		pdf.AddPage()
	}
}

func (r *PDFRenderer) renderTitle(pdf *gofpdf.Fpdf, b document.Title) {
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(colorSlate.R, colorSlate.G, colorSlate.B)
	pdf.CellFormat(0, 14, r.tr(b.Text), "", 1, "C", false, 0, "")

	if b.Badge != "" {
		tone := colorGreen
		if b.BadgeTone == "fail" {
			tone = colorRed
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(tone.R, tone.G, tone.B)
		pdf.CellFormat(0, 8, r.tr(b.Badge), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)
}

func (r *PDFRenderer) renderSectionHeading(pdf *gofpdf.Fpdf, b document.SectionHeading) {
	// Keep headings attached to at least a little of their section.
	r.ensureSpace(pdf, 30)

	if b.Severity != nil {
		c := SeverityColor(*b.Severity)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(c.R, c.G, c.B)
	} else {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(colorSlate.R, colorSlate.G, colorSlate.B)
	}
	pdf.Ln(3)
	pdf.CellFormat(0, 9, r.tr(b.Text), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func (r *PDFRenderer) renderSummaryTable(pdf *gofpdf.Fpdf, b document.SummaryTable) {
	if len(b.Rows) == 0 {
		return
	}
	r.ensureSpace(pdf, 12+float64(len(b.Rows))*7)

	if b.Caption != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(colorSlate.R, colorSlate.G, colorSlate.B)
		pdf.CellFormat(0, 8, r.tr(b.Caption), "", 1, "L", false, 0, "")
	}

	cols := len(b.Rows[0])
	if len(b.Header) > cols {
		cols = len(b.Header)
	}
	widths := r.columnWidths(pdf, cols)

	if len(b.Header) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(colorTableHead.R, colorTableHead.G, colorTableHead.B)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range b.Header {
			pdf.CellFormat(widths[i], 8, r.tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "", 10)
	for rowIdx, row := range b.Rows {
		if rowIdx%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(colorZebra.R, colorZebra.G, colorZebra.B)
		}
		pdf.SetTextColor(60, 60, 60)
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(widths[i], 7, r.tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

// columnWidths spreads the content width over cols columns, giving the
// label column extra room.
func (r *PDFRenderer) columnWidths(pdf *gofpdf.Fpdf, cols int) []float64 {
	pageW, _ := pdf.GetPageSize()
	content := pageW - 2*r.config.Margin
	widths := make([]float64, cols)
	if cols == 1 {
		widths[0] = content
		return widths
	}
	first := content * 0.34
	rest := (content - first) / float64(cols-1)
	widths[0] = first
	for i := 1; i < cols; i++ {
		widths[i] = rest
	}
	return widths
}

func (r *PDFRenderer) renderFindingCard(pdf *gofpdf.Fpdf, b document.FindingCard) {
	// Lookahead break: a card straddling the page bottom is unreadable.
	r.ensureSpace(pdf, 32)

	f := b.Finding
	pageW, _ := pdf.GetPageSize()
	content := pageW - 2*r.config.Margin
	labelW := 28.0
	valueW := content - labelW

	c := SeverityColor(f.Severity)
	top := pdf.GetY()

	rows := []struct{ label, value string }{
		{"Rule", f.CheckID},
		{"File", f.Location()},
		{"Description", f.DisplayMessage()},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(colorCardLabel.R, colorCardLabel.G, colorCardLabel.B)
		pdf.SetTextColor(colorSlate.R, colorSlate.G, colorSlate.B)

		pdf.CellFormat(labelW, 6, row.label, "1", 0, "R", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(valueW, 6, r.tr(row.value), "1", "L", false)
	}

	// Severity stripe along the card's left edge.
	pdf.SetDrawColor(c.R, c.G, c.B)
	pdf.SetLineWidth(1.2)
	pdf.Line(r.config.Margin-1.5, top, r.config.Margin-1.5, pdf.GetY())
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)

	pdf.Ln(3)
}

func (r *PDFRenderer) renderNote(pdf *gofpdf.Fpdf, b document.Note) {
	switch b.Style {
	case document.NoteCelebration:
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(colorGreen.R, colorGreen.G, colorGreen.B)
		pdf.CellFormat(0, 10, r.tr(b.Text), "", 1, "C", false, 0, "")
	case document.NoteBullet:
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(60, 60, 60)
		pdf.MultiCell(0, 5.5, "- "+r.tr(b.Text), "", "L", false)
	case document.NoteHighlight:
		r.ensureSpace(pdf, 14)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(0xea, 0xf2, 0xfb)
		pdf.SetTextColor(colorSlate.R, colorSlate.G, colorSlate.B)
		pdf.MultiCell(0, 8, r.tr(b.Text), "1", "C", true)
		pdf.Ln(2)
	default:
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(0, 5.5, r.tr(b.Text), "", "L", false)
		pdf.Ln(1)
	}
}

// ensureSpace breaks the page when fewer than h millimeters remain.
func (r *PDFRenderer) ensureSpace(pdf *gofpdf.Fpdf, h float64) {
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+h > pageH-r.config.Margin-8 {
		pdf.AddPage()
	}
}
