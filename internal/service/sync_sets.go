package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/models"
)

func (s *syncService) syncAllSets(ctx context.Context) error {
	sets, err := s.listSets(ctx)
	if err != nil {
		return err
	}

	for i := range sets {
		if err = s.fillSetPhotos(ctx, &sets[i], i+1, len(sets)); err != nil {
			return err
		}
	}

	return s.output.WriteSets(ctx, sets)
}

// syncSetIDs refreshes the given sets inside the stored set listing. Sets not
// named keep their stored photos; the listing takes the remote set order and
// drops sets the remote no longer has. With recurse the photos of the named
// sets are synced too.
func (s *syncService) syncSetIDs(ctx context.Context, ids []string, recurse bool) error {
	stored, err := s.output.ReadSets(ctx)
	if err != nil {
		return fmt.Errorf("error reading stored sets: %w", err)
	}

	byID := make(map[string]models.Photoset, len(stored)+len(ids))
	for _, set := range stored {
		byID[set.ID] = set
	}

	for _, id := range ids {
		info, err := s.remote.GetPhotosetInfo(ctx, id)
		if err != nil {
			return fmt.Errorf("error fetching set %s: %w", id, err)
		}
		info.PhotoIDs = nil
		byID[id] = info
	}

	remote, err := s.listSets(ctx)
	if err != nil {
		return err
	}

	sets := make([]models.Photoset, 0, len(remote))
	for _, r := range remote {
		if set, ok := byID[r.ID]; ok {
			sets = append(sets, set)
		}
	}

	var (
		photoIDs []string
		seen     = make(map[string]struct{})
		n        int
	)
	for _, id := range ids {
		i := slices.IndexFunc(sets, func(set models.Photoset) bool { return set.ID == id })
		if i < 0 {
			logger.FromContext(ctx).Warn().Str("id", id).Msg("set is not listed by the remote, skipping")
			continue
		}

		n++
		if err = s.fillSetPhotos(ctx, &sets[i], n, len(ids)); err != nil {
			return err
		}

		for _, pid := range sets[i].PhotoIDs {
			if _, ok := seen[pid]; !ok {
				seen[pid] = struct{}{}
				photoIDs = append(photoIDs, pid)
			}
		}
	}

	if err = s.output.WriteSets(ctx, sets); err != nil {
		return err
	}

	if !recurse || len(photoIDs) == 0 {
		return nil
	}

	return s.syncPhotoIDs(ctx, photoIDs)
}

// listSets returns every set of the account in remote order, without photos.
func (s *syncService) listSets(ctx context.Context) ([]models.Photoset, error) {
	sets, err := CollectAll[models.Photoset](ctx, photosetsPerPage, s.remote.ListPhotosets,
		WithName("sets.page"),
	)
	if err != nil {
		return nil, fmt.Errorf("error listing sets: %w", err)
	}
	return sets, nil
}

func (s *syncService) fillSetPhotos(ctx context.Context, set *models.Photoset, n, total int) error {
	ids, err := CollectAll[string](ctx, photosetPhotosPerPage,
		func(ctx context.Context, page, perPage int) (models.Page[string], error) {
			return s.remote.ListPhotosetPhotos(ctx, set.ID, page, perPage)
		},
		WithName("set.photos.page"),
	)
	if err != nil {
		return fmt.Errorf("error fetching photos of set %s: %w", set.ID, err)
	}

	set.PhotoIDs = ids

	logger.FromContext(ctx).Info().
		Int("n", n).
		Int("total", total).
		Str("id", set.ID).
		Str("title", set.Title).
		Int("things", len(ids)).
		Msg("set")

	return nil
}
