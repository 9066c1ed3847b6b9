package render

import (
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/Masterminds/sprig/v3"

	"github.com/reportforge/reportforge/pkg/document"
)

// Compile-time interface checks.
var (
	_ Renderer   = (*HTMLRenderer)(nil)
	_ MetaWriter = (*HTMLRenderer)(nil)
)

// HTMLConfig configures the HTML report backend.
type HTMLConfig struct {
	// Title is the browser tab title (default: the document's title
	// block, falling back to "Report").
	Title string

	// CompanyName renders under the header title when set.
	CompanyName string

	// FooterText renders in the page footer before the generation line.
	FooterText string

	// AccentColor is the header gradient start (default: #667eea).
	AccentColor string

	// SecondaryColor is the header gradient end (default: #764ba2).
	SecondaryColor string
}

// HTMLRenderer writes a block sequence as a single styled HTML page.
// Blocks buffer in memory; Close renders the complete document.
type HTMLRenderer struct {
	w      io.Writer
	mu     sync.Mutex
	config HTMLConfig
	meta   document.Meta
	blocks []document.Block
}

// NewHTMLRenderer creates an HTML renderer writing to w.
func NewHTMLRenderer(w io.Writer, config HTMLConfig) *HTMLRenderer {
	if config.AccentColor == "" {
		config.AccentColor = "#667eea"
	}
	if config.SecondaryColor == "" {
		config.SecondaryColor = "#764ba2"
	}
	return &HTMLRenderer{w: w, config: config}
}

// WriteMeta records the run metadata rendered in the page footer.
func (r *HTMLRenderer) WriteMeta(meta document.Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meta = meta
}

// WriteBlock buffers one block.
func (r *HTMLRenderer) WriteBlock(b document.Block) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks = append(r.blocks, b)
	return nil
}

// Close renders all buffered blocks and writes the HTML page.
func (r *HTMLRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := r.preparePage()

	funcMap := sprig.FuncMap()
	funcMap["safeHTML"] = func(s string) template.HTML { return template.HTML(s) }

	tmpl, err := template.New("report").Funcs(funcMap).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("parse html template: %w", err)
	}
	if err := tmpl.Execute(r.w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// View model. The template never touches document blocks directly.
type htmlPage struct {
	Config     HTMLConfig
	TabTitle   string
	Title      string
	Badge      string
	BadgeClass string
	Subtitle   string
	Preamble   []htmlItem
	Sections   []htmlSection
	FooterLine string
	ReportID   string
}

type htmlSection struct {
	Heading string
	Color   string
	Items   []htmlItem
}

type htmlItem struct {
	Kind document.Kind

	// Note fields.
	Text      string
	NoteClass string

	// Table fields.
	Caption string
	Header  []string
	Rows    [][]string
	Cards   bool

	// Finding card fields.
	Finding *htmlFinding

	// Chart markup, painted by the SVG backend.
	ChartSVG template.HTML
}

// htmlFinding carries the severity in its canonical upper-case form;
// the template recases it for the chip.
type htmlFinding struct {
	CheckID  string
	Location string
	Message  string
	Severity string
	Color    string
}

func (r *HTMLRenderer) preparePage() *htmlPage {
	page := &htmlPage{
		Config:   r.config,
		TabTitle: r.config.Title,
		ReportID: r.meta.ReportID,
	}
	if r.meta.ToolVersion != "" {
		page.FooterLine = fmt.Sprintf("Generated by reportforge v%s", r.meta.ToolVersion)
	}

	section := -1 // index into page.Sections, -1 while in the preamble
	push := func(item htmlItem) {
		if section < 0 {
			page.Preamble = append(page.Preamble, item)
			return
		}
		page.Sections[section].Items = append(page.Sections[section].Items, item)
	}

	for _, block := range r.blocks {
		switch b := block.(type) {
		case document.Title:
			page.Title = b.Text
			if page.TabTitle == "" {
				page.TabTitle = b.Text
			}
			page.Badge = b.Badge
			if b.BadgeTone == "fail" {
				page.BadgeClass = "badge-fail"
			} else {
				page.BadgeClass = "badge-pass"
			}
		case document.Subtitle:
			page.Subtitle = b.Text
		case document.SectionHeading:
			s := htmlSection{Heading: b.Text, Color: colorSlate.Hex()}
			if b.Severity != nil {
				s.Color = SeverityColor(*b.Severity).Hex()
			}
			page.Sections = append(page.Sections, s)
			section = len(page.Sections) - 1
		case document.SummaryTable:
			push(htmlItem{
				Kind:    b.BlockKind(),
				Caption: b.Caption,
				Header:  b.Header,
				Rows:    b.Rows,
				Cards:   b.Style == document.TableCards,
			})
		case document.FindingCard:
			f := b.Finding
			push(htmlItem{
				Kind: b.BlockKind(),
				Finding: &htmlFinding{
					CheckID:  f.CheckID,
					Location: f.Location(),
					Message:  f.DisplayMessage(),
					Severity: f.Severity.String(),
					Color:    SeverityColor(f.Severity).Hex(),
				},
			})
		case document.Chart:
			var svg string
			switch {
			case b.Spec.Convergence != nil:
				svg = ConvergenceSVG(*b.Spec.Convergence)
			case b.Spec.Histogram != nil:
				svg = HistogramSVG(*b.Spec.Histogram)
			case b.Spec.Sensitivities != nil:
				svg = SensitivityBarsSVG(*b.Spec.Sensitivities)
			}
			push(htmlItem{Kind: b.BlockKind(), Caption: b.Caption, ChartSVG: template.HTML(svg)})
		case document.Note:
			push(htmlItem{Kind: b.BlockKind(), Text: b.Text, NoteClass: noteClass(b.Style)})
		case document.PageBreak:
			push(htmlItem{Kind: b.BlockKind()})
		}
	}

	return page
}

func noteClass(s document.NoteStyle) string {
	switch s {
	case document.NoteCelebration:
		return "note-celebration"
	case document.NoteBullet:
		return "note-bullet"
	case document.NoteHighlight:
		return "note-highlight"
	default:
		return "note-plain"
	}
}

// htmlTemplate is the embedded page template.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.TabTitle | default "Report"}}</title>
    <style>
        *, *::before, *::after { box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, sans-serif;
            background: #f0f2f5;
            color: #212529;
            margin: 0;
            padding: 0;
            line-height: 1.6;
        }

        .header {
            background: linear-gradient(135deg, {{.Config.AccentColor}} 0%, {{.Config.SecondaryColor}} 100%);
            color: white;
            padding: 2.5rem 2rem;
            text-align: center;
        }

        .header h1 { margin: 0; font-size: 2rem; }

        .header .company-name {
            opacity: 0.85;
            font-size: 0.9rem;
            margin-top: 0.25rem;
        }

        .header .subtitle {
            opacity: 0.9;
            font-size: 0.95rem;
            margin-top: 0.5rem;
        }

        .status-badge {
            display: inline-block;
            margin-top: 0.75rem;
            padding: 0.35rem 1.25rem;
            border-radius: 20px;
            font-weight: 700;
            font-size: 0.9rem;
            letter-spacing: 0.05em;
        }

        .badge-pass { background: #27ae60; color: white; }
        .badge-fail { background: #e74c3c; color: white; }

        .container {
            max-width: 1000px;
            margin: 0 auto;
            padding: 2rem;
        }

        section.report-section {
            background: white;
            border-radius: 12px;
            padding: 1.5rem 2rem;
            margin-bottom: 1.5rem;
            box-shadow: 0 2px 8px rgba(0,0,0,0.08);
        }

        section.report-section > h2 {
            margin-top: 0;
            font-size: 1.25rem;
            border-bottom: 2px solid #f0f2f5;
            padding-bottom: 0.5rem;
        }

        /* Metric cards */
        .metric-cards {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 1rem;
            margin: 1rem 0;
        }

        .metric-card {
            background: #f8f9fa;
            border-radius: 8px;
            padding: 1rem;
            text-align: center;
            border-left: 4px solid {{.Config.AccentColor}};
        }

        .metric-card .value { font-size: 1.6rem; font-weight: 700; }
        .metric-card .label { color: #6c757d; font-size: 0.8rem; margin-top: 0.25rem; }
        .metric-card .metric-subtext { color: #8a94a6; font-size: 0.72rem; margin-top: 0.2rem; }

        /* Grid tables */
        table.summary-table {
            width: 100%;
            border-collapse: collapse;
            margin: 1rem 0;
            font-size: 0.9rem;
        }

        table.summary-table th {
            background: #34495e;
            color: white;
            text-align: left;
            padding: 0.6rem 0.75rem;
        }

        table.summary-table td {
            padding: 0.55rem 0.75rem;
            border: 1px solid #e9ecef;
        }

        table.summary-table tr:nth-child(even) td { background: #f8f9fa; }

        .table-caption {
            font-weight: 600;
            color: #2c3e50;
            margin: 1rem 0 0.25rem;
        }

        /* Finding cards */
        .finding-card {
            background: #fdfdfd;
            border: 1px solid #e9ecef;
            border-left-width: 5px;
            border-radius: 6px;
            margin: 0.75rem 0;
            padding: 0.9rem 1.1rem;
        }

        .finding-card .finding-head {
            display: flex;
            align-items: center;
            gap: 0.6rem;
            margin-bottom: 0.4rem;
        }

        .finding-card .severity-chip {
            color: white;
            padding: 0.15rem 0.6rem;
            border-radius: 12px;
            font-size: 0.72rem;
            font-weight: 700;
            text-transform: uppercase;
        }

        .finding-card .check-id {
            font-family: 'Monaco', 'Consolas', monospace;
            font-size: 0.85rem;
            font-weight: 600;
            word-break: break-all;
        }

        .finding-card .location {
            color: #6c757d;
            font-size: 0.8rem;
            font-family: 'Monaco', 'Consolas', monospace;
            margin-bottom: 0.35rem;
            word-break: break-all;
        }

        .finding-card .message { font-size: 0.9rem; }

        /* Notes */
        .note-plain { color: #495057; margin: 0.75rem 0; }

        .note-celebration {
            text-align: center;
            color: #27ae60;
            font-size: 1.3rem;
            font-weight: 700;
            margin: 2rem 0;
        }

        .note-bullet {
            margin: 0.3rem 0 0.3rem 1.25rem;
            list-style: disc;
            display: list-item;
            color: #495057;
        }

        .note-highlight {
            background: #eaf2fb;
            border: 1px solid #c9ddf2;
            border-radius: 8px;
            padding: 0.9rem 1.1rem;
            margin: 1rem 0;
            font-weight: 600;
            text-align: center;
            color: #2c3e50;
        }

        /* Charts */
        .chart-block { margin: 1.25rem 0; }
        .chart-block .chart-caption {
            font-weight: 600;
            color: #2c3e50;
            margin-bottom: 0.4rem;
        }

        .footer {
            text-align: center;
            padding: 1.5rem;
            color: #6c757d;
            font-size: 0.82rem;
        }

        @media print {
            body { background: white; }
            section.report-section { box-shadow: none; border: 1px solid #dee2e6; }
            .page-break { page-break-before: always; }
            .finding-card { page-break-inside: avoid; }
        }

        @page { margin: 1cm; }
    </style>
</head>
<body>
    <header class="header">
        <h1>{{.Title}}</h1>
        {{if .Config.CompanyName}}<div class="company-name">{{.Config.CompanyName}}</div>{{end}}
        {{if .Subtitle}}<div class="subtitle">{{.Subtitle}}</div>{{end}}
        {{if .Badge}}<div class="status-badge {{.BadgeClass}}">{{.Badge}}</div>{{end}}
    </header>

    <main class="container">
        {{template "items" .Preamble}}
        {{range .Sections}}
        <section class="report-section">
            <h2 style="color: {{.Color}}">{{.Heading}}</h2>
            {{template "items" .Items}}
        </section>
        {{end}}
    </main>

    <footer class="footer">
        {{if .Config.FooterText}}<div>{{.Config.FooterText}}</div>{{end}}
        {{if .FooterLine}}<div>{{.FooterLine}}{{if .ReportID}} | Report ID: {{.ReportID}}{{end}}</div>{{end}}
    </footer>
</body>
</html>
{{define "items"}}
{{range .}}
{{if eq .Kind "summary_table"}}
    {{if .Caption}}<div class="table-caption">{{.Caption}}</div>{{end}}
    {{if .Cards}}
    <div class="metric-cards">
        {{range .Rows}}
        <div class="metric-card">
            <div class="value">{{index . 1}}</div>
            <div class="label">{{index . 0}}</div>
            {{if gt (len .) 2}}<div class="metric-subtext">{{index . 2}}</div>{{end}}
        </div>
        {{end}}
    </div>
    {{else}}
    <table class="summary-table">
        {{if .Header}}<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>{{end}}
        <tbody>
        {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
        {{end}}</tbody>
    </table>
    {{end}}
{{else if eq .Kind "finding_card"}}
    <div class="finding-card" style="border-left-color: {{.Finding.Color}}">
        <div class="finding-head">
            <span class="severity-chip" style="background: {{.Finding.Color}}">{{.Finding.Severity | lower | title}}</span>
            <span class="check-id">{{.Finding.CheckID}}</span>
        </div>
        <div class="location">{{.Finding.Location}}</div>
        <div class="message">{{.Finding.Message}}</div>
    </div>
{{else if eq .Kind "chart"}}
    <div class="chart-block">
        {{if .Caption}}<div class="chart-caption">{{.Caption}}</div>{{end}}
        {{.ChartSVG}}
    </div>
{{else if eq .Kind "note"}}
    <div class="{{.NoteClass}}">{{.Text}}</div>
{{else if eq .Kind "page_break"}}
    <div class="page-break"></div>
{{end}}
{{end}}
{{end}}`
