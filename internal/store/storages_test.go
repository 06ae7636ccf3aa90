package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/photo-backup/internal/config"
	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/internal/utils"
)

func TestNewStorages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backup")
	cfg := config.Storage{Dir: dir, JournalDSN: filepath.Join(dir, ".journal.db")}
	fs := afero.NewOsFs()

	s, err := NewStorages(context.Background(), cfg, fs, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NotNil(t, s.Output)
	require.NotNil(t, s.Journal)

	ctx := context.Background()
	run, err := s.Journal.StartRun(ctx, "photos")
	require.NoError(t, err)

	ctx = utils.WithRunID(ctx, run.ID)
	require.NoError(t, s.Output.WritePhotoIndex(ctx, []string{"1", "2"}))
	require.NoError(t, s.Journal.FinishRun(ctx, run.ID, nil))

	exists, err := afero.Exists(fs, filepath.Join(dir, PhotoIndexFile))
	require.NoError(t, err)
	assert.True(t, exists)

	runs, err := s.Journal.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Units)
}

func TestNewStorages_ReopensExistingJournal(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Storage{Dir: dir, JournalDSN: filepath.Join(dir, ".journal.db")}

	first, err := NewStorages(context.Background(), cfg, afero.NewOsFs(), logger.Nop())
	require.NoError(t, err)
	_, err = first.Journal.StartRun(context.Background(), "sets")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStorages(context.Background(), cfg, afero.NewOsFs(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	runs, err := second.Journal.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestNewStorages_ReadOnlyFs(t *testing.T) {
	cfg := config.Storage{Dir: "/backup", JournalDSN: "/backup/.journal.db"}

	_, err := NewStorages(context.Background(), cfg, afero.NewReadOnlyFs(afero.NewMemMapFs()), logger.Nop())
	assert.Error(t, err)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
	assert.NoError(t, (&Storages{}).Close())
}
