package adapter

import (
	"context"

	"github.com/MKhiriev/photo-backup/models"
)

type photosetRecord struct {
	ID          flexString `json:"id"`
	Primary     flexString `json:"primary"`
	Title       content    `json:"title"`
	Description content    `json:"description"`
}

func (p photosetRecord) photoset() models.Photoset {
	return models.Photoset{
		ID:          p.ID.String(),
		Title:       p.Title.String(),
		Description: p.Description.String(),
		PrimaryID:   p.Primary.String(),
	}
}

// ListPhotosets implements [RemoteAdapter] via photosets.getList.
func (r *restAdapter) ListPhotosets(ctx context.Context, page, perPage int) (models.Page[models.Photoset], error) {
	var resp struct {
		Photosets struct {
			pageInfo
			Photoset []photosetRecord `json:"photoset"`
		} `json:"photosets"`
	}
	params := pageParams(page, perPage, map[string]string{"user_id": r.userID})
	if err := r.call(ctx, "flickr.photosets.getList", params, &resp); err != nil {
		return models.Page[models.Photoset]{}, err
	}

	items := make([]models.Photoset, 0, len(resp.Photosets.Photoset))
	for _, p := range resp.Photosets.Photoset {
		items = append(items, p.photoset())
	}

	return models.Page[models.Photoset]{Items: items, Page: int(resp.Photosets.Page), Pages: int(resp.Photosets.Pages)}, nil
}

// GetPhotosetInfo implements [RemoteAdapter] via photosets.getInfo.
func (r *restAdapter) GetPhotosetInfo(ctx context.Context, id string) (models.Photoset, error) {
	var resp struct {
		Photoset photosetRecord `json:"photoset"`
	}
	if err := r.call(ctx, "flickr.photosets.getInfo", map[string]string{"photoset_id": id}, &resp); err != nil {
		return models.Photoset{}, err
	}

	return resp.Photoset.photoset(), nil
}

// ListPhotosetPhotos implements [RemoteAdapter] via photosets.getPhotos.
func (r *restAdapter) ListPhotosetPhotos(ctx context.Context, setID string, page, perPage int) (models.Page[string], error) {
	var resp struct {
		Photoset struct {
			pageInfo
			Photo []idRef `json:"photo"`
		} `json:"photoset"`
	}
	params := pageParams(page, perPage, map[string]string{"photoset_id": setID})
	if err := r.call(ctx, "flickr.photosets.getPhotos", params, &resp); err != nil {
		return models.Page[string]{}, err
	}

	return models.Page[string]{Items: ids(resp.Photoset.Photo), Page: int(resp.Photoset.Page), Pages: int(resp.Photoset.Pages)}, nil
}

// ListGalleries implements [RemoteAdapter] via galleries.getList.
func (r *restAdapter) ListGalleries(ctx context.Context, page, perPage int) (models.Page[models.Gallery], error) {
	var resp struct {
		Galleries struct {
			pageInfo
			Gallery []struct {
				ID          flexString `json:"id"`
				Owner       flexString `json:"owner"`
				Primary     flexString `json:"primary_photo_id"`
				DateCreate  flexString `json:"date_create"`
				DateUpdate  flexString `json:"date_update"`
				Title       content    `json:"title"`
				Description content    `json:"description"`
			} `json:"gallery"`
		} `json:"galleries"`
	}
	params := pageParams(page, perPage, map[string]string{"user_id": r.userID})
	if err := r.call(ctx, "flickr.galleries.getList", params, &resp); err != nil {
		return models.Page[models.Gallery]{}, err
	}

	items := make([]models.Gallery, 0, len(resp.Galleries.Gallery))
	for _, g := range resp.Galleries.Gallery {
		items = append(items, models.Gallery{
			ID:          g.ID.String(),
			Owner:       g.Owner.String(),
			Title:       g.Title.String(),
			Description: g.Description.String(),
			PrimaryID:   g.Primary.String(),
			Created:     g.DateCreate.String(),
			Updated:     g.DateUpdate.String(),
		})
	}

	return models.Page[models.Gallery]{Items: items, Page: int(resp.Galleries.Page), Pages: int(resp.Galleries.Pages)}, nil
}

// ListGalleryPhotos implements [RemoteAdapter] via galleries.getPhotos.
func (r *restAdapter) ListGalleryPhotos(ctx context.Context, galleryID string, page, perPage int) (models.Page[models.GalleryPhoto], error) {
	var resp photosResponse
	params := pageParams(page, perPage, map[string]string{"gallery_id": galleryID})
	if err := r.call(ctx, "flickr.galleries.getPhotos", params, &resp); err != nil {
		return models.Page[models.GalleryPhoto]{}, err
	}

	items := make([]models.GalleryPhoto, 0, len(resp.Photos.Photo))
	for _, p := range resp.Photos.Photo {
		items = append(items, models.GalleryPhoto{ID: p.ID.String(), Owner: p.Owner.String()})
	}

	return models.Page[models.GalleryPhoto]{Items: items, Page: int(resp.Photos.Page), Pages: int(resp.Photos.Pages)}, nil
}
