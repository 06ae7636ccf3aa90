// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/utils"
)

// Storages groups the backup tree and the sync journal into a single value
// that can be passed to the service layer.
type Storages struct {
	// Output is the XML backup tree under the configured directory.
	Output Output

	// Journal is the SQLite record of runs and written units.
	Journal Journal

	db *DB
}

// NewStorages initialises the storage layer. It performs the following steps:
//  1. Creates the backup directory on fs.
//  2. Opens the SQLite journal at cfg.JournalDSN, creating the file if it
//     does not yet exist.
//  3. Runs pending journal migrations via [DB.Migrate].
//  4. Wires an [Output] over fs that records into the journal.
//
// fs must be OS-backed because the journal file is opened by the sqlite
// driver directly.
func NewStorages(ctx context.Context, cfg config.Storage, fs afero.Fs, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("dir", cfg.Dir).Msg("creating new storages...")

	if err := fs.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating backup directory: %w", err)
	}

	db, err := NewConnectSQLite(ctx, fs, cfg.JournalDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	journal := NewJournal(db, utils.NewUUIDGenerator(), logger)

	return &Storages{
		Output:  NewFileOutput(fs, cfg.Dir, journal, logger),
		Journal: journal,
		db:      db,
	}, nil
}

// Close releases the journal connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
