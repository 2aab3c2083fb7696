package driven

import (
	"context"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

// HistoryStore persists conversion job outcomes.
type HistoryStore interface {
	// Record saves the outcome of a finished job.
	Record(ctx context.Context, rec *domain.JobRecord) error

	// List returns the most recent records, newest first, up to limit.
	// A limit of zero or less returns all records.
	List(ctx context.Context, limit int) ([]domain.JobRecord, error)

	// Get returns a single record by job ID.
	// Returns domain.ErrNotFound when no record exists.
	Get(ctx context.Context, jobID string) (*domain.JobRecord, error)
}
