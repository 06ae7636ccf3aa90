// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"iter"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MKhiriev/photo-backup/internal/telemetry"
	"github.com/MKhiriev/photo-backup/models"
)

// Page sizes used when walking remote listings.
const (
	contactsPerPage       = 50
	favoritesPerPage      = 50
	photosetsPerPage      = 100
	photosetPhotosPerPage = 100
	galleriesPerPage      = 25
	galleryPhotosPerPage  = 25
	photoFavoritesPerPage = 25
	photoGalleriesPerPage = 25
	photosPerPage         = 40
	popularPhotosPerPage  = 40
)

const defaultPageSpanName = "collector.page"

// PageFetcher fetches one page of a remote listing.
type PageFetcher[T any] func(ctx context.Context, page, perPage int) (models.Page[T], error)

type collectOptions struct {
	name   string
	onPage func(page, pages int)
}

// CollectOption configures [Pages] and [CollectAll].
type CollectOption func(*collectOptions)

// WithName names the listing in trace spans.
func WithName(name string) CollectOption {
	return func(o *collectOptions) {
		o.name = name
	}
}

// OnPage registers fn to be called after every fetched page with the page
// number and the page count the remote reported on it.
func OnPage(fn func(page, pages int)) CollectOption {
	return func(o *collectOptions) {
		o.onPage = fn
	}
}

// Pages walks a paginated listing lazily starting at page 1. The page count
// is re-read from every response and the walk continues while the current
// page does not exceed it. The first error is yielded and ends the walk;
// there are no retries.
func Pages[T any](ctx context.Context, perPage int, fetch PageFetcher[T], opts ...CollectOption) iter.Seq2[T, error] {
	o := collectOptions{name: defaultPageSpanName}
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(T, error) bool) {
		for page, pages := 1, 1; page <= pages; page++ {
			p, err := fetchPage(ctx, o.name, page, perPage, fetch)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}

			pages = p.Pages
			if o.onPage != nil {
				o.onPage(page, pages)
			}

			for _, item := range p.Items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

func fetchPage[T any](ctx context.Context, name string, page, perPage int, fetch PageFetcher[T]) (models.Page[T], error) {
	ctx, span := telemetry.StartSpan(ctx, name,
		attribute.Int("page", page),
		attribute.Int("per_page", perPage),
	)
	defer span.End()

	p, err := fetch(ctx, page, perPage)
	telemetry.RecordError(span, err)

	return p, err
}

// CollectAll drains [Pages] into a slice in remote order.
func CollectAll[T any](ctx context.Context, perPage int, fetch PageFetcher[T], opts ...CollectOption) ([]T, error) {
	items := make([]T, 0)
	for item, err := range Pages(ctx, perPage, fetch, opts...) {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
