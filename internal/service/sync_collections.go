package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/models"
)

func (s *syncService) syncAllCollections(ctx context.Context) error {
	h := models.NewCollectionHierarchy()
	if err := s.hierarchy.Build(ctx, h, ""); err != nil {
		return err
	}

	if err := h.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHierarchy, err)
	}

	logger.FromContext(ctx).Info().Int("total", h.Len()).Msg("collections fetched")

	return s.output.WriteCollections(ctx, h)
}

// syncCollectionIDs builds the subtrees of the given collections and syncs,
// with recursion, every set found in them. collections.xml is left alone.
func (s *syncService) syncCollectionIDs(ctx context.Context, ids []string) error {
	log := logger.FromContext(ctx)

	h := models.NewCollectionHierarchy()
	for _, id := range ids {
		if h.Contains(id) {
			log.Debug().Str("id", id).Msg("collection already fetched with an earlier subtree")
			continue
		}
		if err := s.hierarchy.Build(ctx, h, id); err != nil {
			return err
		}
	}

	setIDs := h.SetIDs()
	log.Info().
		Int("collections", h.Len()).
		Int("sets", len(setIDs)).
		Msg("collection subtrees fetched")

	if len(setIDs) == 0 {
		return nil
	}

	return s.syncSetIDs(ctx, setIDs, true)
}
