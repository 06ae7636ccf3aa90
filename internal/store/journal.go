// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/models"
)

// IDGenerator produces run identifiers.
type IDGenerator interface {
	Generate() string
}

type sqlJournal struct {
	*DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewJournal returns a [Journal] stored in db.
func NewJournal(db *DB, ids IDGenerator, logger *logger.Logger) Journal {
	return &sqlJournal{
		DB:     db,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (j *sqlJournal) StartRun(ctx context.Context, scope string) (models.JournalRun, error) {
	log := logger.FromContext(ctx)

	run := models.JournalRun{
		ID:        j.ids.Generate(),
		Scope:     scope,
		Status:    models.RunRunning,
		StartedAt: j.now(),
	}

	query, args, err := buildInsertRunQuery(run)
	if err != nil {
		return models.JournalRun{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlJournal.StartRun").
			Str("run_id", run.ID).
			Msg("failed to insert sync run")
		return models.JournalRun{}, fmt.Errorf("%w: insert run: %w", ErrExecutingStatement, err)
	}

	return run, nil
}

func (j *sqlJournal) RecordUnit(ctx context.Context, unit models.JournalUnit) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUnitQuery(unit, j.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlJournal.RecordUnit").
			Str("run_id", unit.RunID).
			Str("path", unit.Path).
			Msg("failed to insert output unit")
		return fmt.Errorf("%w: insert unit (path=%s): %w", ErrExecutingStatement, unit.Path, err)
	}

	return nil
}

func (j *sqlJournal) LastHash(ctx context.Context, path string) (string, error) {
	query, args, err := buildLastHashQuery(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash string
	err = j.QueryRowContext(ctx, query, args...).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqlJournal.LastHash").
			Str("path", path).
			Msg("failed to query last hash")
		return "", fmt.Errorf("%w: last hash (path=%s): %w", ErrExecutingQuery, path, err)
	}

	return hash, nil
}

// FinishRun marks the run succeeded, or failed with runErr's text when runErr
// is not nil.
func (j *sqlJournal) FinishRun(ctx context.Context, runID string, runErr error) error {
	log := logger.FromContext(ctx)

	status, errText := models.RunSucceeded, ""
	if runErr != nil {
		status, errText = models.RunFailed, runErr.Error()
	}

	query, args, err := buildFinishRunQuery(runID, status, errText, j.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := j.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlJournal.FinishRun").
			Str("run_id", runID).
			Msg("failed to update sync run")
		return fmt.Errorf("%w: finish run: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: finish run: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	return nil
}

func (j *sqlJournal) ListRuns(ctx context.Context, limit int) ([]models.JournalRun, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRunsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlJournal.ListRuns").Msg("failed to query sync runs")
		return nil, fmt.Errorf("%w: list runs: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var runs []models.JournalRun
	for rows.Next() {
		var (
			run      models.JournalRun
			finished sql.NullTime
		)
		if err = rows.Scan(&run.ID, &run.Scope, &run.Status, &run.Error, &run.StartedAt, &finished, &run.Units); err != nil {
			log.Err(err).Str("func", "sqlJournal.ListRuns").Msg("failed to scan sync run")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if finished.Valid {
			t := finished.Time
			run.FinishedAt = &t
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}
