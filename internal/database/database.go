package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Pool interface for database connection pool operations
type Pool interface {
	PingContext(ctx context.Context) error
	Close() error
}

// DSN builds the go-sqlite3 connection string for a store file.
// Transactions take the write lock up front (BEGIN IMMEDIATE) so two
// read-modify-write sequences on the same row cannot interleave.
func DSN(path string) string {
	q := url.Values{}
	q.Set("_busy_timeout", strconv.FormatInt(DefaultBusyTimeout.Milliseconds(), 10))
	q.Set("_journal_mode", "WAL")
	q.Set("_txlock", "immediate")
	q.Set("_foreign_keys", "on")
	q.Set("_synchronous", "NORMAL")
	return "file:" + path + "?" + q.Encode()
}

// Open opens (creating if needed) the SQLite store at path.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, DataDirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateDataDir, err)
		}
	}

	db, err := sqlx.Open(DriverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	db.SetMaxOpenConns(DefaultMaxOpenConns)
	db.SetMaxIdleConns(DefaultMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase, "path", path)
	return db, nil
}

// OpenAndMigrate opens the store and applies every pending migration.
func OpenAndMigrate(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if _, err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
