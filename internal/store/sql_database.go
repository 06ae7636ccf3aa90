package store

import (
	"database/sql"

	"github.com/MKhiriev/photo-backup/internal/logger"
	"github.com/MKhiriev/photo-backup/migrations"
)

// DB is the journal database connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending journal migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
