package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/adapter"
	"github.com/MKhiriev/photo-backup/models"
)

type photoFetcher struct {
	remote adapter.RemoteAdapter
}

// NewPhotoFetcher returns an [ItemFetcher] that assembles a photo from the
// seven remote detail calls.
func NewPhotoFetcher(remote adapter.RemoteAdapter) ItemFetcher {
	return &photoFetcher{remote: remote}
}

func (f *photoFetcher) FetchPhoto(ctx context.Context, id string) (models.Photo, error) {
	info, err := f.remote.GetPhotoInfo(ctx, id)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo info: %w", err)
	}

	exif, err := f.remote.GetExif(ctx, id, info.Secret)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo exif: %w", err)
	}
	if exif.Ok() {
		models.SortExif(exif.Value)
	}

	favorites, err := CollectAll[models.Favoriter](ctx, photoFavoritesPerPage,
		func(ctx context.Context, page, perPage int) (models.Page[models.Favoriter], error) {
			return f.remote.ListPhotoFavorites(ctx, id, page, perPage)
		},
		WithName("photo.favorites.page"),
	)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo favorites: %w", err)
	}

	comments, err := f.remote.ListPhotoComments(ctx, id)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo comments: %w", err)
	}

	location, err := f.remote.GetLocation(ctx, id)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo location: %w", err)
	}

	contexts, err := f.remote.GetAllContexts(ctx, id)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo contexts: %w", err)
	}

	contexts.GalleryIDs, err = CollectAll[string](ctx, photoGalleriesPerPage,
		func(ctx context.Context, page, perPage int) (models.Page[string], error) {
			return f.remote.ListGalleriesForPhoto(ctx, id, page, perPage)
		},
		WithName("photo.galleries.page"),
	)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo galleries: %w", err)
	}

	people, err := f.remote.ListPeople(ctx, id)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo people: %w", err)
	}

	return models.Photo{
		Info:      info,
		Exif:      exif,
		Favorites: favorites,
		Comments:  comments,
		Location:  location,
		Contexts:  contexts,
		People:    people,
	}, nil
}

type remotePredecessors struct {
	remote adapter.RemoteAdapter
}

// NewRemotePredecessors returns a [PredecessorLookup] backed by the photo
// context call of the remote.
func NewRemotePredecessors(remote adapter.RemoteAdapter) PredecessorLookup {
	return &remotePredecessors{remote: remote}
}

func (p *remotePredecessors) Predecessor(ctx context.Context, id string) (string, error) {
	return p.remote.GetPhotoPredecessor(ctx, id)
}
