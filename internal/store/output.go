// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/utils"
	"github.com/MKhiriev/photo-backup/models"
)

// Names of the top-level files of the backup tree.
const (
	ContactsFile    = "contacts.xml"
	FavoritesFile   = "favorites.xml"
	GroupsFile      = "groups.xml"
	CollectionsFile = "collections.xml"
	SetsFile        = "sets.xml"
	GalleriesFile   = "galleries.xml"
	PhotoIndexFile  = "photos.xml"
	ProfileFile     = "profile.xml"

	// PhotosDir holds one file per photo, sharded by the last two digits of
	// the photo id.
	PhotosDir = "photos"
)

// PhotoPath returns the path of a photo file relative to the backup root.
func PhotoPath(id string) string {
	shard := id
	if len(id) > 2 {
		shard = id[len(id)-2:]
	}
	return path.Join(PhotosDir, shard, id+".xml")
}

type fileOutput struct {
	fs      afero.Fs
	dir     string
	journal Journal
	logger  *logger.Logger
}

// NewFileOutput returns an [Output] writing under dir on fs. journal may be
// nil, in which case nothing is recorded.
func NewFileOutput(fs afero.Fs, dir string, journal Journal, logger *logger.Logger) Output {
	return &fileOutput{
		fs:      fs,
		dir:     dir,
		journal: journal,
		logger:  logger,
	}
}

func (o *fileOutput) Exists(name string) (bool, error) {
	ok, err := afero.Exists(o.fs, o.full(name))
	if err != nil {
		return false, fmt.Errorf("error checking %s: %w", name, err)
	}
	return ok, nil
}

// write stores data at rel through a temporary file so a crash never leaves a
// truncated file behind, then records the unit.
func (o *fileOutput) write(ctx context.Context, rel string, kind models.ResourceKind, itemID string, data []byte) error {
	log := logger.FromContext(ctx)

	hash := utils.HashContent(data)
	status := models.UnitWritten

	if o.journal != nil {
		last, err := o.journal.LastHash(ctx, rel)
		if err != nil {
			return fmt.Errorf("error reading last hash of %s: %w", rel, err)
		}
		if last == hash {
			status = models.UnitUnchanged
		}
	}

	full := o.full(rel)
	if err := o.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		log.Err(err).Str("func", "fileOutput.write").Str("path", rel).Msg("error creating directory")
		return fmt.Errorf("%w: %s: %w", ErrWritingOutput, rel, err)
	}

	tmp := full + ".tmp"
	if err := afero.WriteFile(o.fs, tmp, data, 0o644); err != nil {
		log.Err(err).Str("func", "fileOutput.write").Str("path", rel).Msg("error writing temporary file")
		return fmt.Errorf("%w: %s: %w", ErrWritingOutput, rel, err)
	}
	if err := o.fs.Rename(tmp, full); err != nil {
		_ = o.fs.Remove(tmp)
		log.Err(err).Str("func", "fileOutput.write").Str("path", rel).Msg("error moving file into place")
		return fmt.Errorf("%w: %s: %w", ErrWritingOutput, rel, err)
	}

	log.Debug().Str("path", rel).Str("status", status).Msg("output unit stored")

	runID, ok := utils.GetRunIDFromContext(ctx)
	if o.journal == nil || !ok {
		return nil
	}

	return o.journal.RecordUnit(ctx, models.JournalUnit{
		RunID:  runID,
		Path:   rel,
		Kind:   kind,
		ItemID: itemID,
		Hash:   hash,
		Status: status,
	})
}

func (o *fileOutput) read(rel string) ([]byte, error) {
	data, err := afero.ReadFile(o.fs, o.full(rel))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotFound, rel)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", rel, err)
	}
	return data, nil
}

func (o *fileOutput) full(rel string) string {
	return filepath.Join(o.dir, filepath.FromSlash(rel))
}
