package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// SQLiteRepository bundles the entry and user stores over a single
// SQLite database. Entries and Users satisfy the services ports.
type SQLiteRepository struct {
	db      *sql.DB
	Entries *EntryRepository
	Users   *UserRepository
}

// NewSQLiteRepository opens (creating if needed) the database at
// dbPath, runs pending migrations and returns a ready repository.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return newRepository(db), nil
}

// newRepository wraps an already-open database. Used by tests.
func newRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{
		db:      db,
		Entries: &EntryRepository{db: db},
		Users:   &UserRepository{db: db},
	}
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
