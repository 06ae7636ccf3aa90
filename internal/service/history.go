package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/store"
	"github.com/MKhiriev/photo-backup/models"
)

type historyService struct {
	journal store.Journal
}

// NewHistoryService returns a [HistoryService] reading journal.
func NewHistoryService(journal store.Journal) HistoryService {
	return &historyService{journal: journal}
}

func (h *historyService) History(ctx context.Context, limit int) ([]models.JournalRun, error) {
	runs, err := h.journal.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing runs: %w", err)
	}
	return runs, nil
}
