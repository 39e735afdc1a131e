package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrimArmory_Go/internal/database/sqlite"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/repository"
	"github.com/osse101/GrimArmory_Go/internal/testing/dbtest"
)

func setup(t *testing.T) (Service, repository.Account) {
	t.Helper()
	repo := sqlite.NewAccountRepository(dbtest.Open(t))
	return NewService(repo, nil), repo
}

func seed(t *testing.T, repo repository.Account, accounts ...domain.Account) {
	t.Helper()
	ctx := context.Background()
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	for _, a := range accounts {
		require.NoError(t, tx.ReplaceAccount(ctx, a))
	}
	require.NoError(t, tx.Commit(ctx))
}

func TestExportFile(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)
	seed(t, repo,
		domain.Account{
			UserID: "1", Balance: 40,
			Inventory:  []domain.InventoryItem{{ItemName: "Sword", Quantity: 2}},
			Characters: []domain.Character{{Name: "Ayla", Title: "Knight", SheetURL: "https://docs.google.com/spreadsheets/d/abc"}},
		},
		domain.Account{UserID: "2"},
	)

	path := filepath.Join(t.TempDir(), "export", "users.json")
	n, err := svc.ExportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.JSONEq(t, `40`, string(doc["1"]["crowns"]))
	assert.JSONEq(t, `[{"item_name": "Sword", "quantity": 2}]`, string(doc["1"]["inventory"]))
	assert.JSONEq(t, `[]`, string(doc["2"]["inventory"]))
	assert.JSONEq(t, `[]`, string(doc["2"]["characters"]))
}

func TestExportImport_RoundTripRestoresAccounts(t *testing.T) {
	ctx := context.Background()
	src, srcRepo := setup(t)
	seed(t, srcRepo, domain.Account{
		UserID: "1", Balance: 12,
		Inventory:  []domain.InventoryItem{{ItemName: "Shield", Quantity: 1}},
		Characters: []domain.Character{{Name: "Bram"}},
	})
	path := filepath.Join(t.TempDir(), "users.json")
	_, err := src.ExportFile(ctx, path)
	require.NoError(t, err)

	dst, dstRepo := setup(t)
	n, err := dst.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	acct, err := dstRepo.GetAccount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), acct.Balance)
	assert.Equal(t, []domain.InventoryItem{{ItemName: "Shield", Quantity: 1}}, acct.Inventory)
	assert.Equal(t, []domain.Character{{Name: "Bram"}}, acct.Characters)
}

func TestImport_LegacyDocument(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)
	seed(t, repo, domain.Account{UserID: "1", Balance: 999}, domain.Account{UserID: "keep", Balance: 5})

	n, err := svc.Import(ctx, []byte(`{
		"1": {"crowns": 7, "inventory": ["Sword", "sword", "Shield"], "characters": []},
		"2": {}
	}`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	acct, err := repo.GetAccount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), acct.Balance, "import overwrites existing accounts")
	assert.Equal(t, []domain.InventoryItem{{ItemName: "Sword", Quantity: 2}, {ItemName: "Shield", Quantity: 1}}, acct.Inventory)

	acct, err = repo.GetAccount(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), acct.Balance)
	assert.Empty(t, acct.Inventory)

	acct, err = repo.GetAccount(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, int64(5), acct.Balance)
}

func TestImport_MalformedEntryAbortsEverything(t *testing.T) {
	ctx := context.Background()
	svc, repo := setup(t)
	seed(t, repo, domain.Account{UserID: "1", Balance: 10})

	for name, doc := range map[string]string{
		"negative crowns":   `{"1": {"crowns": 50}, "2": {"crowns": -3}}`,
		"bad quantity":      `{"1": {"crowns": 50}, "2": {"inventory": [{"item_name": "Sword", "quantity": 0}]}}`,
		"not json":          `{"1": {"crowns": 50},`,
		"character garbage": `{"1": {"crowns": 50}, "2": {"characters": ["Ayla"]}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Import(ctx, []byte(doc))
			assert.ErrorIs(t, err, domain.ErrImport)

			acct, err := repo.GetAccount(ctx, "1")
			require.NoError(t, err)
			assert.Equal(t, int64(10), acct.Balance)
			_, err = repo.GetAccount(ctx, "2")
			assert.ErrorIs(t, err, domain.ErrAccountNotFound)
		})
	}
}

func TestImportFile_Missing(t *testing.T) {
	svc, _ := setup(t)
	n, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
