// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/store"
	"github.com/MKhiriev/photo-backup/internal/utils"
	"github.com/MKhiriev/photo-backup/models"
)

// syncAllPhotos rewrites the photo index from the full remote listing and
// fetches every photo.
func (s *syncService) syncAllPhotos(ctx context.Context) error {
	ids, err := CollectAll[string](ctx, photosPerPage, s.remote.ListPhotos,
		WithName("photos.page"),
		pageProgress(ctx, "photos"),
	)
	if err != nil {
		return fmt.Errorf("error listing photos: %w", err)
	}

	if err = s.output.WritePhotoIndex(ctx, ids); err != nil {
		return err
	}

	return s.fetchPhotos(ctx, ids)
}

// syncPhotoIDs merges ids into the stored photo index by predecessor lookups
// and fetches only the given photos.
func (s *syncService) syncPhotoIDs(ctx context.Context, ids []string) error {
	existing, err := s.output.ReadPhotoIndex(ctx)
	if err != nil {
		return fmt.Errorf("error reading photo index: %w", err)
	}

	merged, err := s.reconciler.Reconcile(ctx, existing, ids)
	if err != nil {
		return fmt.Errorf("error merging photo ids: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int("existing", len(existing)).
		Int("merged", len(merged)-len(existing)).
		Msg("photo index merged")

	if err = s.output.WritePhotoIndex(ctx, merged); err != nil {
		return err
	}

	return s.fetchPhotos(ctx, ids)
}

// syncPopularPhotos fetches the photos popular on any day of dates. The photo
// index is not touched.
func (s *syncService) syncPopularPhotos(ctx context.Context, dates models.DateRange) error {
	log := logger.FromContext(ctx)

	var ids []string
	seen := make(map[string]struct{})

	for day := range dates.Days() {
		log.Info().Str("date", day.Format(models.DateLayout)).Msg("popular photos")

		fetch := func(ctx context.Context, page, perPage int) (models.Page[string], error) {
			return s.remote.ListPopularPhotos(ctx, day, page, perPage)
		}
		for id, err := range Pages[string](ctx, popularPhotosPerPage, fetch, WithName("popular.page"), pageProgress(ctx, "popular photos")) {
			if err != nil {
				return fmt.Errorf("error listing popular photos of %s: %w", day.Format(models.DateLayout), err)
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return s.fetchPhotos(ctx, ids)
}

// fetchPhotos fetches and writes every photo in ids. Empty and repeated ids
// are dropped.
// Photos the remote no longer knows are recorded as skipped; a photo that
// cannot be fetched at all aborts the sync.
func (s *syncService) fetchPhotos(ctx context.Context, ids []string) error {
	log := logger.FromContext(ctx)

	pending := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		pending = append(pending, id)
	}

	for i, id := range pending {
		lookup, err := s.supervisor.Fetch(ctx, id)
		if err != nil {
			return err
		}

		if !lookup.Ok() {
			if err = s.recordSkipped(ctx, id); err != nil {
				return err
			}
			continue
		}

		if err = s.output.WritePhoto(ctx, lookup.Value); err != nil {
			return err
		}

		log.Info().
			Int("n", i+1).
			Int("total", len(pending)).
			Str("id", id).
			Str("title", lookup.Value.Info.Title).
			Msg("photo")
	}

	return nil
}

func (s *syncService) recordSkipped(ctx context.Context, id string) error {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		return nil
	}

	err := s.journal.RecordUnit(ctx, models.JournalUnit{
		RunID:  runID,
		Path:   store.PhotoPath(id),
		Kind:   models.KindPhotos,
		ItemID: id,
		Status: models.UnitSkipped,
	})
	if err != nil {
		return fmt.Errorf("error recording skipped photo %s: %w", id, err)
	}

	return nil
}
