// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// photo service.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync
// service from the wire protocol. The package ships a REST implementation
// ([NewRESTAdapter]) that signs every call and decodes the service's JSON
// format.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from failed API payloads by classifyAPIError, so callers
// can use [errors.Is] (e.g. [ErrNotFound] for a deleted photo,
// [ErrUnauthorized] for a rejected key).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/photo-backup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines read-only access to one account on the remote photo
// service. Paginated methods take a 1-based page number and return the page
// together with the total page count reported by the remote, which callers
// must re-read on every page.
type RemoteAdapter interface {
	// ListContacts returns one page of the account's contacts.
	ListContacts(ctx context.Context, page, perPage int) (models.Page[models.Contact], error)

	// ListFavorites returns one page of photos the account marked as
	// favorite.
	ListFavorites(ctx context.Context, page, perPage int) (models.Page[models.Favorite], error)

	// ListPublicGroups returns every group the account publicly belongs to.
	// The remote does not paginate this listing.
	ListPublicGroups(ctx context.Context) ([]models.Group, error)

	// GetCollectionTree returns the collection tree of the account. When
	// rootID is empty the whole forest is returned; otherwise only the
	// subtree rooted at rootID.
	GetCollectionTree(ctx context.Context, rootID string) ([]models.CollectionTreeNode, error)

	// GetCollectionInfo returns the extended detail of one collection.
	GetCollectionInfo(ctx context.Context, id string) (models.CollectionInfo, error)

	// ListPhotosets returns one page of sets in the remote set order. Photo
	// ids are not filled in.
	ListPhotosets(ctx context.Context, page, perPage int) (models.Page[models.Photoset], error)

	// GetPhotosetInfo returns the metadata of one set without photo ids.
	GetPhotosetInfo(ctx context.Context, id string) (models.Photoset, error)

	// ListPhotosetPhotos returns one page of photo ids contained in a set.
	ListPhotosetPhotos(ctx context.Context, setID string, page, perPage int) (models.Page[string], error)

	// ListGalleries returns one page of galleries curated by the account.
	ListGalleries(ctx context.Context, page, perPage int) (models.Page[models.Gallery], error)

	// ListGalleryPhotos returns one page of photos placed in a gallery.
	ListGalleryPhotos(ctx context.Context, galleryID string, page, perPage int) (models.Page[models.GalleryPhoto], error)

	// ListPhotos returns one page of the account's photo ids in canonical
	// (upload) order.
	ListPhotos(ctx context.Context, page, perPage int) (models.Page[string], error)

	// ListPopularPhotos returns one page of photo ids that were popular on
	// the given day.
	ListPopularPhotos(ctx context.Context, day time.Time, page, perPage int) (models.Page[string], error)

	// GetPhotoPredecessor returns the id of the photo immediately before id in
	// canonical order, or "" when id is the first photo of the account.
	GetPhotoPredecessor(ctx context.Context, id string) (string, error)

	// GetPhotoInfo returns the primary detail record of a photo. A deleted
	// photo yields [ErrNotFound].
	GetPhotoInfo(ctx context.Context, id string) (models.PhotoInfo, error)

	// GetExif returns the EXIF entries of a photo in remote order. When the
	// owner hides EXIF the result has status NotAvailable.
	GetExif(ctx context.Context, id, secret string) (models.Lookup[[]models.Exif], error)

	// ListPhotoFavorites returns one page of members who marked the photo as
	// favorite.
	ListPhotoFavorites(ctx context.Context, id string, page, perPage int) (models.Page[models.Favoriter], error)

	// ListPhotoComments returns every comment left on a photo.
	ListPhotoComments(ctx context.Context, id string) ([]models.Comment, error)

	// GetLocation returns the geotag of a photo, or status NotAvailable when
	// the photo is not geotagged.
	GetLocation(ctx context.Context, id string) (models.Lookup[models.Location], error)

	// GetAllContexts returns the sets and pools a photo belongs to. Gallery
	// ids are not filled in; see ListGalleriesForPhoto.
	GetAllContexts(ctx context.Context, id string) (models.PhotoContexts, error)

	// ListGalleriesForPhoto returns one page of gallery ids containing the
	// photo.
	ListGalleriesForPhoto(ctx context.Context, id string, page, perPage int) (models.Page[string], error)

	// ListPeople returns the members tagged on a photo.
	ListPeople(ctx context.Context, id string) ([]models.PersonTag, error)

	// GetPerson returns the identity record of the account.
	GetPerson(ctx context.Context) (models.Person, error)

	// ListUserTags returns every tag the account has used, in remote order.
	ListUserTags(ctx context.Context) ([]string, error)

	// GetPreferences returns the account preferences. It issues one call per
	// preference group.
	GetPreferences(ctx context.Context) (models.Preferences, error)
}
