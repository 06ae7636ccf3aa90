package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/telemetry"
	"github.com/MKhiriev/photo-backup/models"
)

// syncJob adapts the sync of one resource kind to workers.Worker.
type syncJob struct {
	kind models.ResourceKind
	run  func(ctx context.Context) error
}

func newSyncJob(kind models.ResourceKind, run func(ctx context.Context) error) *syncJob {
	return &syncJob{kind: kind, run: run}
}

func (j *syncJob) Name() string {
	return j.kind.String()
}

func (j *syncJob) Run(ctx context.Context) error {
	ctx, span := telemetry.StartSpan(ctx, "sync."+j.kind.String(),
		attribute.String("kind", string(rune(j.kind))),
	)
	defer span.End()

	log := logger.FromContext(ctx)
	log.Info().Msgf("Syncing %s (%c)...", j.kind, byte(j.kind))

	started := time.Now()
	if err := j.run(ctx); err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	log.Debug().Str("kind", j.kind.String()).Dur("took", time.Since(started)).Msg("kind synced")
	return nil
}

// pageProgress returns a collector hook logging the page counters of a
// listing.
func pageProgress(ctx context.Context, listing string) CollectOption {
	log := logger.FromContext(ctx)
	return OnPage(func(page, pages int) {
		log.Info().Int("n", page).Int("total", pages).Msgf("%s page", listing)
	})
}
