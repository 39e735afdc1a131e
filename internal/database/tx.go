package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/osse101/GrimArmory_Go/internal/logger"
)

// TxRunner runs a function inside a write transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error
}

// SQLXTxRunner is the TxRunner backed by a *sqlx.DB.
type SQLXTxRunner struct {
	db *sqlx.DB
}

// NewTxRunner creates a TxRunner for db.
func NewTxRunner(db *sqlx.DB) SQLXTxRunner {
	return SQLXTxRunner{db: db}
}

// WithTx runs fn inside a transaction on the runner's database.
func (r SQLXTxRunner) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	return WithTx(ctx, r.db, fn)
}

// WithTx begins a transaction, runs fn and commits. Any error from fn rolls
// the transaction back and is returned unchanged. A busy or locked database
// is retried a few times before giving up.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	var lastErr error
	for attempt := 1; attempt <= DefaultTxAttempts; attempt++ {
		lastErr = runTx(ctx, db, fn)
		if lastErr == nil || !IsBusy(lastErr) || attempt == DefaultTxAttempts {
			return lastErr
		}

		logger.FromContext(ctx).Warn(LogMsgRetryingBusyTransaction, "attempt", attempt, "error", lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt*attempt) * TxRetryBaseDelay):
		}
	}
	return fmt.Errorf("%s: %w", ErrMsgTxRetryLimitExceeded, lastErr)
}

func runTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxDone
func SafeRollback(ctx context.Context, tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error(ErrMsgFailedToRollbackTransaction, "error", err)
	}
}

// IsBusy reports whether err is SQLite refusing the write lock.
func IsBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// IsConstraint reports whether err is a SQLite constraint violation.
func IsConstraint(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}
