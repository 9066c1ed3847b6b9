// Package document defines the semantic block model of a report and the
// assemblers that compose findings or metrics into an ordered block
// sequence. A Document is backend-agnostic: the same structure drives
// both the paginated PDF renderer and the hypertext HTML renderer.
//
// Construction is append-only. A document is assembled once, finalized,
// and handed to a layout backend; nothing reads back from a later stage.
package document

import (
	"github.com/reportforge/reportforge/pkg/chart"
	"github.com/reportforge/reportforge/pkg/finding"
)

// Kind identifies the semantic role of a block.
type Kind string

const (
	// KindTitle is the report title.
	KindTitle Kind = "title"
	// KindSubtitle is the generation-timestamp line under the title.
	KindSubtitle Kind = "subtitle"
	// KindSectionHeading opens a report section.
	KindSectionHeading Kind = "section_heading"
	// KindSummaryTable is a labeled grid of rows.
	KindSummaryTable Kind = "summary_table"
	// KindFindingCard is one finding rendered as a label/value card.
	KindFindingCard Kind = "finding_card"
	// KindChart is one chart painted from its geometry.
	KindChart Kind = "chart"
	// KindNote is a paragraph of narrative text.
	KindNote Kind = "note"
	// KindPageBreak forces a page boundary in paginated backends.
	KindPageBreak Kind = "page_break"
)

// Block is one semantic unit of the assembled report.
type Block interface {
	BlockKind() Kind
}

// Title is the report title, optionally carrying a status badge the
// backend may render beside it.
type Title struct {
	Text      string `json:"text"`
	Badge     string `json:"badge,omitempty"`
	BadgeTone string `json:"badge_tone,omitempty"` // "pass" or "fail"
}

// Subtitle is the secondary line under the title, typically the
// generation timestamp.
type Subtitle struct {
	Text string `json:"text"`
}

// SectionHeading opens a section. Severity-tagged headings render in
// the severity color.
type SectionHeading struct {
	Text     string            `json:"text"`
	Severity *finding.Severity `json:"severity,omitempty"`
}

// TableStyle selects how a backend presents a SummaryTable.
type TableStyle string

const (
	// TableGrid is a plain header-plus-rows grid.
	TableGrid TableStyle = "grid"
	// TableCards presents each row as a metric card where the backend
	// supports it; paginated backends fall back to a grid.
	TableCards TableStyle = "cards"
)

// SummaryTable is a grid of labeled rows. Header may be empty for
// two-column label/value tables.
type SummaryTable struct {
	Caption string     `json:"caption,omitempty"`
	Header  []string   `json:"header,omitempty"`
	Rows    [][]string `json:"rows"`
	Style   TableStyle `json:"style,omitempty"`
}

// FindingCard presents one finding as a Rule / File / Description card.
type FindingCard struct {
	Finding finding.Finding `json:"finding"`
}

// ChartSpec is the geometry payload of a Chart block: exactly one of
// the three chart kinds is set.
type ChartSpec struct {
	Convergence   *chart.Convergence     `json:"convergence,omitempty"`
	Histogram     *chart.Histogram       `json:"histogram,omitempty"`
	Sensitivities *chart.SensitivityBars `json:"sensitivities,omitempty"`
}

// Chart embeds one chart with an optional caption.
type Chart struct {
	Spec    ChartSpec `json:"spec"`
	Caption string    `json:"caption,omitempty"`
}

// NoteStyle selects how a backend presents a Note.
type NoteStyle string

const (
	// NotePlain is an unadorned paragraph.
	NotePlain NoteStyle = "plain"
	// NoteCelebration is the centered all-clear message.
	NoteCelebration NoteStyle = "celebration"
	// NoteBullet is one bulleted list item.
	NoteBullet NoteStyle = "bullet"
	// NoteHighlight is a visually emphasized callout box.
	NoteHighlight NoteStyle = "highlight"
)

// Note is a paragraph of narrative text.
type Note struct {
	Text  string    `json:"text"`
	Style NoteStyle `json:"style,omitempty"`
}

// PageBreak forces a page boundary. The hypertext backend emits a
// print-only break.
type PageBreak struct{}

func (Title) BlockKind() Kind          { return KindTitle }
func (Subtitle) BlockKind() Kind       { return KindSubtitle }
func (SectionHeading) BlockKind() Kind { return KindSectionHeading }
func (SummaryTable) BlockKind() Kind   { return KindSummaryTable }
func (FindingCard) BlockKind() Kind    { return KindFindingCard }
func (Chart) BlockKind() Kind          { return KindChart }
func (Note) BlockKind() Kind           { return KindNote }
func (PageBreak) BlockKind() Kind      { return KindPageBreak }
