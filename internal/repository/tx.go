package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/osse101/GrimArmory_Go/internal/logger"
)

// Tx is the commit/rollback surface shared by every store transaction.
// Account and catalog transactions hold the SQLite write lock from begin
// until Commit or Rollback.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is deferred after BeginTx. Rolling back an already committed
// transaction is expected and stays silent; any other failure is logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, sql.ErrTxDone) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
}

// LogMsgRollbackFailed is logged when a deferred rollback fails
const LogMsgRollbackFailed = "Failed to roll back store transaction"
