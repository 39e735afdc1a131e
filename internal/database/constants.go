package database

import "time"

// Connection settings
const (
	// DriverName is the database/sql driver registered by mattn/go-sqlite3
	DriverName = "sqlite3"

	// DefaultBusyTimeout is how long a writer waits on the file lock before SQLITE_BUSY
	DefaultBusyTimeout = 5 * time.Second

	// DefaultMaxOpenConns bounds the pool; SQLite serializes writers anyway
	DefaultMaxOpenConns = 8

	// DefaultTxAttempts is how many times WithTx retries a busy/locked transaction
	DefaultTxAttempts = 3

	// TxRetryBaseDelay is the base for the quadratic retry backoff
	TxRetryBaseDelay = 20 * time.Millisecond

	// DataDirPermission is used when creating the parent directory of the store file
	DataDirPermission = 0o755
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToCreateDataDir       = "failed to create data directory"
	ErrMsgFailedToOpenDatabase        = "failed to open database"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction   = "failed to commit transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToMigrate             = "failed to migrate database"
	ErrMsgTxRetryLimitExceeded        = "transaction retry limit exceeded"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgRetryingBusyTransaction         = "Database busy, retrying transaction"
)
