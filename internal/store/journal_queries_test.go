package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/photo-backup/models"
)

func TestBuildLastHashQuery(t *testing.T) {
	query, args, err := buildLastHashQuery("photos/32/5218765432.xml")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT hash FROM sync_units WHERE path = ? AND status <> ? ORDER BY unit_id DESC LIMIT 1",
		query)
	assert.Equal(t, []any{"photos/32/5218765432.xml", models.UnitSkipped}, args)
}

func TestBuildInsertUnitQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	query, args, err := buildInsertUnitQuery(models.JournalUnit{
		RunID:  "r",
		Path:   "photos.xml",
		Kind:   models.KindPhotos,
		Hash:   "h",
		Status: models.UnitWritten,
	}, at)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO sync_units (run_id,path,kind,item_id,hash,status,written_at) VALUES (?,?,?,?,?,?,?)",
		query)
	assert.Equal(t, []any{"r", "photos.xml", "photos", "", "h", models.UnitWritten, at}, args)
}

func TestBuildFinishRunQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	query, args, err := buildFinishRunQuery("r", models.RunFailed, "boom", at)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE sync_runs SET status = ?, error = ?, finished_at = ? WHERE run_id = ?", query)
	assert.Equal(t, []any{models.RunFailed, "boom", at, "r"}, args)
}

func TestBuildListRunsQuery(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		tail  string
	}{
		{name: "unlimited", limit: 0, tail: "ORDER BY r.started_at DESC, r.run_id DESC"},
		{name: "negative is unlimited", limit: -3, tail: "ORDER BY r.started_at DESC, r.run_id DESC"},
		{name: "limited", limit: 5, tail: "ORDER BY r.started_at DESC, r.run_id DESC LIMIT 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListRunsQuery(tt.limit)
			require.NoError(t, err)
			assert.Empty(t, args)
			assert.Contains(t, query, "LEFT JOIN sync_units u ON u.run_id = r.run_id GROUP BY r.run_id")
			assert.True(t, strings.HasSuffix(query, tt.tail), query)
		})
	}
}
