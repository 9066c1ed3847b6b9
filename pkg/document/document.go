package document

import "time"

// Meta identifies one report run. The generation timestamp lives here,
// not in the renderers, so rendering the same document twice yields
// byte-identical output.
type Meta struct {
	ReportID    string    `json:"report_id"`
	GeneratedAt time.Time `json:"generated_at"`
	ToolVersion string    `json:"tool_version"`
}

// Document is the finalized, ordered block sequence of one report.
type Document struct {
	Meta   Meta    `json:"meta"`
	Blocks []Block `json:"blocks"`
}

// append adds blocks in order. Unexported: documents are built by the
// assemblers in this package and are read-only afterwards.
func (d *Document) append(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// timestampLayout formats generation timestamps the way both report
// subtitles present them.
const timestampLayout = "January 02, 2006 at 15:04:05"
