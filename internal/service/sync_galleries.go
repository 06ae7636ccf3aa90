package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/models"
)

func (s *syncService) syncGalleries(ctx context.Context) error {
	log := logger.FromContext(ctx)

	galleries, err := CollectAll[models.Gallery](ctx, galleriesPerPage, s.remote.ListGalleries,
		WithName("galleries.page"),
	)
	if err != nil {
		return fmt.Errorf("error listing galleries: %w", err)
	}

	for i := range galleries {
		g := &galleries[i]
		g.Photos, err = CollectAll[models.GalleryPhoto](ctx, galleryPhotosPerPage,
			func(ctx context.Context, page, perPage int) (models.Page[models.GalleryPhoto], error) {
				return s.remote.ListGalleryPhotos(ctx, g.ID, page, perPage)
			},
			WithName("gallery.photos.page"),
		)
		if err != nil {
			return fmt.Errorf("error fetching photos of gallery %s: %w", g.ID, err)
		}

		log.Info().
			Int("n", i+1).
			Int("total", len(galleries)).
			Str("id", g.ID).
			Str("title", g.Title).
			Int("things", len(g.Photos)).
			Msg("gallery")
	}

	return s.output.WriteGalleries(ctx, galleries)
}
