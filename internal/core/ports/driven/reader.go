package driven

import (
	"context"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// DocumentReader parses a source file into an ordered block sequence.
// Each reader handles one input format.
type DocumentReader interface {
	// Format returns the input format tag this reader handles (e.g. "docx").
	Format() string

	// Read opens the file at path and returns its blocks in document order.
	// The underlying file handle is released on every return path.
	// Returns domain.ErrUnsupportedFormat when the file is not a valid
	// container for the format, domain.ErrCorruptDocument when the
	// container opens but its internal structure is unreadable.
	// The context is checked between top-level blocks so a cancelled
	// conversion stops before rendering.
	Read(ctx context.Context, path string) (*domain.Document, error)
}
