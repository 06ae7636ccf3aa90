// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/photo-backup/internal/adapter"
	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/store"
	"github.com/MKhiriev/photo-backup/internal/utils"
	"github.com/MKhiriev/photo-backup/internal/workers"
	"github.com/MKhiriev/photo-backup/models"
)

type syncService struct {
	remote  adapter.RemoteAdapter
	output  store.Output
	journal store.Journal

	reconciler *Reconciler
	hierarchy  *HierarchyBuilder
	supervisor *Supervisor

	logger *logger.Logger
}

// NewSyncService wires the sync engine over remote, output and journal.
func NewSyncService(remote adapter.RemoteAdapter, output store.Output, journal store.Journal, cfg config.Sync, logger *logger.Logger) SyncService {
	return &syncService{
		remote:     remote,
		output:     output,
		journal:    journal,
		reconciler: NewReconciler(NewRemotePredecessors(remote), cfg.MaxChainDepth),
		hierarchy:  NewHierarchyBuilder(remote),
		supervisor: NewSupervisor(NewPhotoFetcher(remote), cfg.RetryAttempts, cfg.RetryDelay),
		logger:     logger,
	}
}

func (s *syncService) Sync(ctx context.Context, scope models.SyncScope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	if err := s.preflight(scope); err != nil {
		return err
	}

	ctx = s.logger.WithContext(ctx)

	run, err := s.journal.StartRun(ctx, scope.String())
	if err != nil {
		return fmt.Errorf("error starting run: %w", err)
	}

	runLog := &logger.Logger{Logger: s.logger.With().Str("run_id", run.ID).Logger()}
	ctx = runLog.WithContext(utils.WithRunID(ctx, run.ID))

	runLog.Info().Str("scope", run.Scope).Msg("sync started")

	runErr := s.jobs(scope).Run(ctx)

	// the run is recorded even when ctx was cancelled
	if err = s.journal.FinishRun(context.WithoutCancel(ctx), run.ID, runErr); err != nil {
		runLog.Err(err).Str("func", "syncService.Sync").Msg("error finishing run")
		runErr = errors.Join(runErr, err)
	}

	if runErr != nil {
		return runErr
	}

	runLog.Info().Msg("sync finished")
	return nil
}

// preflight checks that the files an identifier-scoped sync merges into were
// written by an earlier full sync.
func (s *syncService) preflight(scope models.SyncScope) error {
	if len(scope.IDs) == 0 {
		return nil
	}

	var required []string
	switch {
	case scope.Kinds.Has(models.KindPhotos):
		required = []string{store.PhotoIndexFile}
	case scope.Kinds.Has(models.KindSets):
		required = []string{store.SetsFile}
		if scope.Recurse {
			required = append(required, store.PhotoIndexFile)
		}
	case scope.Kinds.Has(models.KindCollections):
		required = []string{store.SetsFile, store.PhotoIndexFile}
	}

	var errs []error
	for _, name := range required {
		ok, err := s.output.Exists(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s not found", ErrMissingPrerequisite, name))
		}
	}

	return errors.Join(errs...)
}

// jobs returns one worker per selected kind in sync order.
func (s *syncService) jobs(scope models.SyncScope) *workers.Workers {
	ws := workers.New()

	for _, kind := range scope.Kinds.Ordered() {
		ids := scope.IDsFor(kind)

		var run func(ctx context.Context) error
		switch kind {
		case models.KindContacts:
			run = s.syncContacts
		case models.KindFavorites:
			run = s.syncFavorites
		case models.KindGroups:
			run = s.syncGroups
		case models.KindCollections:
			run = func(ctx context.Context) error {
				if len(ids) > 0 {
					return s.syncCollectionIDs(ctx, ids)
				}
				return s.syncAllCollections(ctx)
			}
		case models.KindSets:
			run = func(ctx context.Context) error {
				if len(ids) > 0 {
					return s.syncSetIDs(ctx, ids, scope.Recurse)
				}
				return s.syncAllSets(ctx)
			}
		case models.KindGalleries:
			run = s.syncGalleries
		case models.KindPhotos:
			run = func(ctx context.Context) error {
				switch {
				case len(ids) > 0:
					return s.syncPhotoIDs(ctx, ids)
				case scope.Dates != nil:
					return s.syncPopularPhotos(ctx, *scope.Dates)
				default:
					return s.syncAllPhotos(ctx)
				}
			}
		case models.KindProfile:
			run = s.syncProfile
		default:
			continue
		}

		ws.Add(newSyncJob(kind, run))
	}

	return ws
}
