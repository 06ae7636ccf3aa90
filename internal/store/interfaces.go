// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/photo-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Output is the local backup tree. Every Write method replaces the whole file
// of its resource kind and records the written unit in the journal when a run
// id is attached to ctx.
type Output interface {
	WriteContacts(ctx context.Context, contacts []models.Contact) error
	WriteFavorites(ctx context.Context, favorites []models.Favorite) error
	WriteGroups(ctx context.Context, groups []models.Group) error
	WriteCollections(ctx context.Context, hierarchy models.CollectionHierarchy) error
	WriteSets(ctx context.Context, sets []models.Photoset) error
	WriteGalleries(ctx context.Context, galleries []models.Gallery) error
	WritePhotoIndex(ctx context.Context, ids []string) error
	WritePhoto(ctx context.Context, photo models.Photo) error
	WriteProfile(ctx context.Context, profile models.Profile) error

	// ReadSets loads the sets file written by an earlier run. It returns
	// [ErrOutputNotFound] when no such file exists.
	ReadSets(ctx context.Context) ([]models.Photoset, error)

	// ReadPhotoIndex loads the ordered photo id index written by an earlier
	// run. It returns [ErrOutputNotFound] when no such file exists.
	ReadPhotoIndex(ctx context.Context) ([]string, error)

	// Exists reports whether the named top-level file is present.
	Exists(name string) (bool, error)
}

// Journal records sync runs and the units they wrote.
type Journal interface {
	StartRun(ctx context.Context, scope string) (models.JournalRun, error)
	RecordUnit(ctx context.Context, unit models.JournalUnit) error
	// LastHash returns the hash most recently recorded for path, or an empty
	// string when the path was never written.
	LastHash(ctx context.Context, path string) (string, error)
	FinishRun(ctx context.Context, runID string, runErr error) error
	// ListRuns returns the newest runs first.
	ListRuns(ctx context.Context, limit int) ([]models.JournalRun, error)
}
