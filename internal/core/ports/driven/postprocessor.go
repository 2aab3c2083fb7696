package driven

import (
	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// BlockProcessor transforms a document's blocks in place before rendering.
// Processors run in pipeline order between reader and renderer.
type BlockProcessor interface {
	// Name returns the processor name for logging.
	Name() string

	// Process transforms the document's blocks. Block order is preserved.
	Process(doc *domain.Document) error
}

// TextSplitter splits rendered output into bounded-size parts.
type TextSplitter interface {
	// Split returns the output parts for the rendered text.
	// A limit of zero with limitSet false returns a single part holding
	// the whole input. A configured limit of zero or less returns
	// domain.ErrInvalidChunkSize.
	Split(content string, limit int, limitSet bool) ([]domain.OutputPart, error)
}
