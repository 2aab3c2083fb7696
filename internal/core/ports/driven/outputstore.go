package driven

import (
	"context"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// OutputStore writes a job's output parts to their destination.
// A write either commits every part or leaves no files behind.
type OutputStore interface {
	// WriteParts writes all parts for the job and returns the final file
	// paths in part order. Exactly one part keeps the job's base filename;
	// multiple parts get a part-index suffix. Failures return
	// domain.ErrOutputWrite with no partial files left at the destination.
	WriteParts(ctx context.Context, job domain.ConversionJob, parts []domain.OutputPart) ([]string, error)
}
