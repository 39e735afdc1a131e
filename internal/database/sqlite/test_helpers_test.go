package sqlite

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/osse101/GrimArmory_Go/internal/testing/dbtest"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	return dbtest.Open(t)
}

func ptr[T any](v T) *T {
	return &v
}
