// Package text renders block sequences into plain text output.
package text

import (
	"context"
	"strings"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/papyrus-cli/internal/i18n"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer converts a block sequence into a single text stream.
// Header blocks render at the start and footer blocks at the end,
// regardless of where the source declared them; the locale only selects
// the marker strings, never the document's own text.
type Renderer struct {
	bundle *i18n.Bundle
}

// New creates a new text renderer over the given locale bundle.
func New(bundle *i18n.Bundle) *Renderer {
	return &Renderer{bundle: bundle}
}

// Format returns the output format tag this renderer produces.
func (r *Renderer) Format() string {
	return "txt"
}

// Render produces the full output text for the document.
func (r *Renderer) Render(ctx context.Context, doc *domain.Document, opts driven.RenderOptions) (string, error) {
	printer, err := r.bundle.Printer(opts.Locale)
	if err != nil {
		return "", err
	}

	tableFormat := opts.TableFormat
	if !tableFormat.IsValid() {
		tableFormat = domain.TableTSV
	}

	var headers, body, footers []domain.Block
	for _, b := range doc.Blocks {
		switch b.Kind {
		case domain.BlockHeader:
			headers = append(headers, b)
		case domain.BlockFooter:
			footers = append(footers, b)
		default:
			body = append(body, b)
		}
	}

	var lines []string

	for _, b := range headers {
		lines = appendMarked(lines, printer.T("header_marker"), b.Text)
	}

	for _, b := range body {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		switch b.Kind {
		case domain.BlockParagraph:
			lines = append(lines, b.Text)
		case domain.BlockTable:
			lines = appendTable(lines, b.Rows, tableFormat)
		}
	}

	for _, b := range footers {
		lines = appendMarked(lines, printer.T("footer_marker"), b.Text)
	}

	out := strings.Join(lines, "\n")
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return "", nil
	}
	return out + "\n", nil
}

// appendMarked adds one marker-prefixed line per line of text.
func appendMarked(lines []string, marker, text string) []string {
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, marker+" "+line)
	}
	return lines
}

// appendTable adds the table rows with a single blank line before and
// after, separating the grid from surrounding paragraphs.
func appendTable(lines []string, rows [][]string, format domain.TableFormat) []string {
	if len(lines) > 0 && lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	for _, row := range rows {
		lines = append(lines, renderRow(row, format))
	}
	return append(lines, "")
}

// renderRow formats one table row. Newlines inside cells are escaped so
// every row stays on one output line.
func renderRow(row []string, format domain.TableFormat) string {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = strings.ReplaceAll(c, "\n", `\n`)
	}

	if format == domain.TablePipe {
		return "| " + strings.Join(cells, " | ") + " |"
	}
	// Trailing empty cells keep their tabs so the column count survives
	// a round trip through strings.Split.
	return strings.Join(cells, "\t")
}
