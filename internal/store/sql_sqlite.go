package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/afero"

	"github.com/MKhiriev/photo-backup/internal/logger"
)

// NewConnectSQLite opens the journal database at dsn, creating the file and
// its directory when they do not exist yet. fs must address the same files as
// the sqlite driver, so callers pass an OS-backed filesystem.
func NewConnectSQLite(ctx context.Context, fs afero.Fs, dsn string, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(fs, dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// one writer at a time
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(fs afero.Fs, dbFile string) error {
	exists, err := afero.Exists(fs, dbFile)
	if err != nil {
		return fmt.Errorf("error checking DB file: %w", err)
	}
	if exists {
		return nil
	}

	if err = fs.MkdirAll(filepath.Dir(dbFile), 0o755); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	f, err := fs.Create(dbFile)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}

	return f.Close()
}
