// Package docxtxt provides the built-in DOCX to plain-text converter.
// It composes the DOCX reader, the table grid processor, the text
// renderer and the line-boundary splitter into one pipeline.
package docxtxt

import (
	"context"
	"fmt"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/papyrus-cli/internal/i18n"
	"github.com/papyrus-labs/papyrus-cli/internal/logger"
	"github.com/papyrus-labs/papyrus-cli/internal/postprocessors/chunker"
	"github.com/papyrus-labs/papyrus-cli/internal/postprocessors/tablegrid"
	"github.com/papyrus-labs/papyrus-cli/internal/readers/docx"
	"github.com/papyrus-labs/papyrus-cli/internal/renderers/text"
)

// Ensure Converter implements the interface.
var _ driven.Converter = (*Converter)(nil)

// Converter is the DOCX→TXT pipeline.
type Converter struct {
	reader     driven.DocumentReader
	processors []driven.BlockProcessor
	renderer   driven.Renderer
	splitter   driven.TextSplitter
}

// New creates the built-in DOCX→TXT converter over the given locale bundle.
func New(bundle *i18n.Bundle) *Converter {
	return &Converter{
		reader:     docx.New(),
		processors: []driven.BlockProcessor{tablegrid.New()},
		renderer:   text.New(bundle),
		splitter:   chunker.New(),
	}
}

// Formats returns the (input, output) pair this converter serves.
func (c *Converter) Formats() (string, string) {
	return c.reader.Format(), c.renderer.Format()
}

// Convert runs the pipeline for one job. Parts are returned in order and
// not yet written to disk.
func (c *Converter) Convert(ctx context.Context, job domain.ConversionJob) ([]domain.OutputPart, error) {
	doc, err := c.reader.Read(ctx, job.InputPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("read %d blocks from %s", len(doc.Blocks), job.InputPath)

	for _, p := range c.processors {
		if err := p.Process(doc); err != nil {
			return nil, fmt.Errorf("%s processor: %w", p.Name(), err)
		}
	}

	rendered, err := c.renderer.Render(ctx, doc, driven.RenderOptions{
		TableFormat: job.TableFormat,
		Locale:      job.Locale,
	})
	if err != nil {
		return nil, err
	}

	parts, err := c.splitter.Split(rendered, job.ChunkSize, job.ChunkLimitSet)
	if err != nil {
		return nil, err
	}
	logger.Debug("rendered %d bytes into %d part(s)", len(rendered), len(parts))

	return parts, nil
}
