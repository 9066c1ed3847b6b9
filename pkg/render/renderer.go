// Package render turns a finalized document block sequence into bytes.
// Two backends implement the same interface: a paginated PDF layout
// (go-pdf/fpdf) and a styled hypertext layout (html/template with
// inline SVG charts). Both paint chart geometry from the same
// pkg/chart values; neither recomputes any numbers.
//
// Renderers buffer blocks and render once on Close. They are written
// for the one-report-per-process pipeline; the internal mutex follows
// the writer convention, not a concurrency promise.
package render

import (
	"fmt"

	"github.com/reportforge/reportforge/pkg/document"
)

// Renderer consumes a block sequence and emits the rendered bytes on
// Close.
type Renderer interface {
	// WriteBlock buffers one block in document order.
	WriteBlock(document.Block) error

	// Close renders all buffered blocks and writes the result.
	Close() error
}

// MetaWriter is implemented by renderers that embed run metadata (the
// generation timestamp, report ID) into their output. Keeping the
// timestamp in the document, not the renderer clock, is what makes
// rendering the same document twice byte-identical.
type MetaWriter interface {
	WriteMeta(document.Meta)
}

// RenderDocument streams doc through r and closes it.
func RenderDocument(r Renderer, doc *document.Document) error {
	if mw, ok := r.(MetaWriter); ok {
		mw.WriteMeta(doc.Meta)
	}
	for i, b := range doc.Blocks {
		if err := r.WriteBlock(b); err != nil {
			return fmt.Errorf("render block %d (%s): %w", i, b.BlockKind(), err)
		}
	}
	return r.Close()
}
