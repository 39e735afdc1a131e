package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/osse101/GrimArmory_Go/internal/database/migrations"
)

// NewMigrator returns a goose provider over the embedded migration set.
func NewMigrator(db *sqlx.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db.DB, migrations.FS,
		goose.WithGoMigrations(migrations.GoMigrations()...),
		goose.WithDisableGlobalRegistry(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return provider, nil
}

// Migrate applies all pending migrations and returns the resulting version.
func Migrate(ctx context.Context, db *sqlx.DB) (int64, error) {
	provider, err := NewMigrator(db)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return version, nil
}
