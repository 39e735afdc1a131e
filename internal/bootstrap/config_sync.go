package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/GrimArmory_Go/internal/backup"
	"github.com/osse101/GrimArmory_Go/internal/catalog"
)

// SyncCatalog imports the catalog file so the shop reflects it on every start.
// Rejected entries are logged and skipped; a malformed file fails startup.
// A missing file leaves the current catalog in place.
func SyncCatalog(ctx context.Context, svc catalog.Service, path string) error {
	slog.Info(LogMsgSyncingCatalog, "path", path)

	report, err := svc.ImportFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgCatalogMissing, "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	for _, f := range report.Failures {
		slog.Warn(LogMsgCatalogEntryRejected, "item", f.ItemName, "reason", f.Reason)
	}
	slog.Info(LogMsgCatalogSynced, "imported", report.Imported, "rejected", len(report.Failures))
	return nil
}

// ImportAccounts loads the account export file, all or nothing
func ImportAccounts(ctx context.Context, svc backup.Service, path string) error {
	slog.Info(LogMsgImportingAccounts, "path", path)

	n, err := svc.ImportFile(ctx, path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedImportAccounts, err)
	}

	slog.Info(LogMsgAccountsImported, "count", n)
	return nil
}
