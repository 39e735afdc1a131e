// Package dbtest opens migrated throwaway stores for package tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrimArmory_Go/internal/database"
)

// Open returns a migrated store file inside t.TempDir(), closed on cleanup.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	db, err := database.OpenAndMigrate(context.Background(), filepath.Join(t.TempDir(), "grim_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
