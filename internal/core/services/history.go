package services

import (
	"context"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/papyrus-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes past conversion outcomes.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns the most recent job records, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.JobRecord, error) {
	return s.store.List(ctx, limit)
}
