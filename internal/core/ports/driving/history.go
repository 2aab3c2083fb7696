package driving

import (
	"context"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// HistoryService exposes past conversion outcomes.
type HistoryService interface {
	// Recent returns the most recent job records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.JobRecord, error)
}
