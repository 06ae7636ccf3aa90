// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/photo-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService runs one backup of the configured account.
type SyncService interface {
	// Sync backs up everything selected by scope. Preconditions of the scope
	// are checked against the backup tree before any remote call, and the
	// run is recorded in the journal whatever its outcome.
	Sync(ctx context.Context, scope models.SyncScope) error
}

// HistoryService reads the sync journal.
type HistoryService interface {
	// History returns up to limit recorded runs, newest first.
	History(ctx context.Context, limit int) ([]models.JournalRun, error)
}

// PredecessorLookup resolves the identifier that immediately precedes id in
// canonical order. An empty result means id is the head of the sequence.
type PredecessorLookup interface {
	Predecessor(ctx context.Context, id string) (string, error)
}

// ItemFetcher performs one attempt at fetching the full record of a photo.
type ItemFetcher interface {
	FetchPhoto(ctx context.Context, id string) (models.Photo, error)
}
