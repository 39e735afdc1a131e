package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	version, err := Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	for _, table := range []string{"accounts", "catalog", "perks", "bestiary"} {
		var n int
		require.NoError(t, db.GetContext(ctx, &n,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table))
		assert.Equal(t, 1, n, "table %s", table)
	}

	// second run is a no-op
	version, err = Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestMigrate_DownRemovesSchema(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	_, err := Migrate(ctx, db)
	require.NoError(t, err)

	provider, err := NewMigrator(db)
	require.NoError(t, err)
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err)

	for _, table := range []string{"accounts", "catalog", "perks", "bestiary"} {
		var n int
		require.NoError(t, db.GetContext(ctx, &n,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table))
		assert.Zero(t, n, "table %s", table)
	}
}

func TestMigrate_RejectsNegativeBalance(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	_, err := Migrate(ctx, db)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO accounts (user_id, balance) VALUES ('1', -5)`)
	require.Error(t, err)
	assert.True(t, IsConstraint(err))
}

func TestMigrate_ImportsLegacyTables(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	db.MustExecContext(ctx, `CREATE TABLE user_data (
		user_id TEXT PRIMARY KEY, crowns INTEGER DEFAULT 0,
		inventory TEXT DEFAULT '[]', characters TEXT DEFAULT '[]')`)
	db.MustExecContext(ctx, `INSERT INTO user_data VALUES
		('100', 50, '["Sword", "Sword", "Shield"]', '[{"name":"Ayla","title":"Knight","sheet_url":"https://example.com"}]'),
		('200', 7, '[''Potion'', ''potion'']', '[]'),
		('300', 3, '__import__("os")', 'not json')`)
	db.MustExecContext(ctx, `CREATE TABLE armory_data (
		item_name TEXT PRIMARY KEY, price INTEGER NOT NULL, item_description TEXT,
		category_tag TEXT, species_tag TEXT, item_icon TEXT)`)
	db.MustExecContext(ctx, `INSERT INTO armory_data VALUES ('Sword', 100, 'Sharp', 'weapon', 'human', NULL)`)
	db.MustExecContext(ctx, `CREATE TABLE perks_data (id INTEGER PRIMARY KEY, perk_name TEXT, bonus INTEGER DEFAULT 0)`)
	db.MustExecContext(ctx, `INSERT INTO perks_data VALUES (111, 'Booster', 10)`)

	_, err := Migrate(ctx, db)
	require.NoError(t, err)

	var row struct {
		Balance    int64  `db:"balance"`
		Inventory  string `db:"inventory"`
		Characters string `db:"characters"`
	}
	require.NoError(t, db.GetContext(ctx, &row, `SELECT balance, inventory, characters FROM accounts WHERE user_id = '100'`))
	assert.Equal(t, int64(50), row.Balance)
	assert.JSONEq(t, `[{"item_name":"Sword","quantity":2},{"item_name":"Shield","quantity":1}]`, row.Inventory)
	assert.JSONEq(t, `[{"name":"Ayla","title":"Knight","sheet_url":"https://example.com"}]`, row.Characters)

	require.NoError(t, db.GetContext(ctx, &row, `SELECT balance, inventory, characters FROM accounts WHERE user_id = '200'`))
	assert.JSONEq(t, `[{"item_name":"Potion","quantity":2}]`, row.Inventory)

	require.NoError(t, db.GetContext(ctx, &row, `SELECT balance, inventory, characters FROM accounts WHERE user_id = '300'`))
	assert.Equal(t, int64(3), row.Balance)
	assert.JSONEq(t, `[]`, row.Inventory)
	assert.JSONEq(t, `[]`, row.Characters)

	var price int64
	require.NoError(t, db.GetContext(ctx, &price, `SELECT price FROM catalog WHERE item_name = 'Sword'`))
	assert.Equal(t, int64(100), price)

	var bonus int64
	require.NoError(t, db.GetContext(ctx, &bonus, `SELECT bonus FROM perks WHERE role_id = 111`))
	assert.Equal(t, int64(10), bonus)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	_, err := Migrate(ctx, db)
	require.NoError(t, err)

	t.Run("commits on success", func(t *testing.T) {
		err := WithTx(ctx, db, func(tx *sqlx.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO accounts (user_id) VALUES ('a')`)
			return err
		})
		require.NoError(t, err)

		var n int
		require.NoError(t, db.GetContext(ctx, &n, `SELECT COUNT(*) FROM accounts WHERE user_id = 'a'`))
		assert.Equal(t, 1, n)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := NewTxRunner(db).WithTx(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO accounts (user_id) VALUES ('b')`); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var n int
		require.NoError(t, db.GetContext(ctx, &n, `SELECT COUNT(*) FROM accounts WHERE user_id = 'b'`))
		assert.Equal(t, 0, n)
	})
}

func TestDSN(t *testing.T) {
	dsn := DSN("data/store.db")
	assert.Contains(t, dsn, "file:data/store.db?")
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "_busy_timeout=5000")
}
