package driven

import (
	"context"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// RenderOptions configures a rendering pass.
type RenderOptions struct {
	// TableFormat selects tsv or pipe table rendering.
	TableFormat domain.TableFormat

	// Locale selects the fixed label strings (header/footer markers).
	Locale string
}

// Renderer converts a block sequence into output text.
type Renderer interface {
	// Format returns the output format tag this renderer produces (e.g. "txt").
	Format() string

	// Render produces the full output text for the document.
	// Returns domain.ErrUnsupportedLocale when the requested locale has
	// no bundled strings and no fallback exists.
	Render(ctx context.Context, doc *domain.Document, opts RenderOptions) (string, error)
}
