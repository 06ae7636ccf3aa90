// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/attribute"

	"github.com/MKhiriev/photo-backup/internal/adapter"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/telemetry"
	"github.com/MKhiriev/photo-backup/models"
)

// Supervisor applies the retry policy to single photo fetches.
type Supervisor struct {
	fetcher  ItemFetcher
	attempts int
	delay    time.Duration
}

// NewSupervisor returns a Supervisor making at most attempts tries with delay
// between them. attempts below one is treated as one.
func NewSupervisor(fetcher ItemFetcher, attempts int, delay time.Duration) *Supervisor {
	return &Supervisor{
		fetcher:  fetcher,
		attempts: max(attempts, 1),
		delay:    delay,
	}
}

// Fetch retrieves the photo id. A photo the remote no longer knows is
// reported as a [models.NotFound] lookup and is not retried. Any other
// failure is retried; once the attempts are spent [ErrRetriesExhausted] is
// returned. Cancelling ctx stops retrying.
func (s *Supervisor) Fetch(ctx context.Context, id string) (models.Lookup[models.Photo], error) {
	log := logger.FromContext(ctx)

	var (
		attempt  int
		photo    models.Photo
		notFound bool
	)

	backoff := retry.WithMaxRetries(uint64(s.attempts-1), retry.BackoffFunc(func() (time.Duration, bool) {
		return s.delay, false
	}))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		ctx, span := telemetry.StartSpan(ctx, "photo.fetch",
			attribute.String("photo.id", id),
			attribute.Int("attempt", attempt),
		)
		defer span.End()

		p, err := s.fetcher.FetchPhoto(ctx, id)
		switch {
		case err == nil:
			photo = p
			return nil
		case errors.Is(err, adapter.ErrNotFound):
			notFound = true
			return nil
		case ctx.Err() != nil:
			return err
		}

		telemetry.RecordError(span, err)
		log.Warn().Err(err).
			Str("id", id).
			Int("attempt", attempt).
			Int("attempts", s.attempts).
			Msg("photo fetch failed")

		return retry.RetryableError(err)
	})

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Lookup[models.Photo]{}, ctxErr
		}
		return models.Lookup[models.Photo]{}, fmt.Errorf("%w: photo %s after %d attempts: %w", ErrRetriesExhausted, id, attempt, err)
	}

	if notFound {
		log.Warn().Str("id", id).Msg("photo not found, skipping")
		return models.Missing[models.Photo](), nil
	}

	return models.FoundValue(photo), nil
}
