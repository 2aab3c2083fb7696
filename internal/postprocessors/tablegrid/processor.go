// Package tablegrid repairs irregular tables into rectangular grids.
package tablegrid

import (
	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.BlockProcessor = (*Processor)(nil)

// Processor pads jagged table rows so every row has the same column count.
// The target width is the maximum row length observed; shorter rows are
// right-padded with empty-string cells. No column is ever dropped and the
// transformation has no failure modes: a zero-row table normalises to
// itself unchanged.
type Processor struct{}

// New creates a new table grid processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "tablegrid"
}

// Process normalises every table block in the document in place.
// Block order and all non-empty cell values are preserved.
func (p *Processor) Process(doc *domain.Document) error {
	for i := range doc.Blocks {
		if doc.Blocks[i].Kind != domain.BlockTable {
			continue
		}
		doc.Blocks[i].Rows = Normalise(doc.Blocks[i].Rows)
	}
	return nil
}

// Normalise returns rows padded to the maximum observed row length.
// The input slice is reused; only short rows are reallocated.
func Normalise(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}
