package migrations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/utils"
)

// Table names used by the first generation of the bot.
const (
	legacyAccountsTable = "user_data"
	legacyCatalogTable  = "armory_data"
	legacyPerksTable    = "perks_data"
)

// upLegacyImport copies rows from the legacy tables when they exist in the
// same file. Legacy inventories (flat name lists) are converted into
// {item_name, quantity} stacks. Existing rows in the new tables win.
func upLegacyImport(ctx context.Context, tx *sql.Tx) error {
	ok, err := tableExists(ctx, tx, legacyAccountsTable)
	if err != nil {
		return err
	}
	if ok {
		if err := importLegacyAccounts(ctx, tx); err != nil {
			return err
		}
	}

	ok, err = tableExists(ctx, tx, legacyCatalogTable)
	if err != nil {
		return err
	}
	if ok {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO catalog (item_name, price, description, category_tag, species_tag, icon)
			SELECT item_name, MAX(price, 0), COALESCE(item_description, ''), COALESCE(category_tag, ''),
			       COALESCE(species_tag, ''), item_icon
			FROM armory_data`); err != nil {
			return fmt.Errorf("copy %s: %w", legacyCatalogTable, err)
		}
	}

	ok, err = tableExists(ctx, tx, legacyPerksTable)
	if err != nil {
		return err
	}
	if ok {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO perks (role_id, perk_name, bonus)
			SELECT id, COALESCE(perk_name, ''), COALESCE(bonus, 0)
			FROM perks_data`); err != nil {
			return fmt.Errorf("copy %s: %w", legacyPerksTable, err)
		}
	}
	return nil
}

// The copy is additive and the legacy tables are left untouched.
func downLegacyImport(context.Context, *sql.Tx) error {
	return nil
}

type legacyAccount struct {
	userID     string
	crowns     int64
	inventory  string
	characters string
}

func importLegacyAccounts(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT user_id, COALESCE(crowns, 0), COALESCE(inventory, '[]'), COALESCE(characters, '[]')
		FROM user_data`)
	if err != nil {
		return fmt.Errorf("read %s: %w", legacyAccountsTable, err)
	}

	var accounts []legacyAccount
	for rows.Next() {
		var a legacyAccount
		if err := rows.Scan(&a.userID, &a.crowns, &a.inventory, &a.characters); err != nil {
			rows.Close()
			return fmt.Errorf("scan %s: %w", legacyAccountsTable, err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for _, a := range accounts {
		items, err := utils.ParseLegacyInventory(a.inventory)
		if err != nil {
			slog.Default().Warn("Dropping unreadable legacy inventory", "user_id", a.userID, "error", err)
			items = []domain.InventoryItem{}
		}
		chars, err := utils.DecodeCharacters(a.characters)
		if err != nil {
			slog.Default().Warn("Dropping unreadable legacy characters", "user_id", a.userID, "error", err)
			chars = []domain.Character{}
		}

		invJSON, err := json.Marshal(items)
		if err != nil {
			return err
		}
		charJSON, err := json.Marshal(chars)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO accounts (user_id, balance, inventory, characters)
			VALUES (?, ?, ?, ?)`,
			a.userID, max(a.crowns, 0), string(invJSON), string(charJSON)); err != nil {
			return fmt.Errorf("insert account %s: %w", a.userID, err)
		}
	}
	return nil
}

func tableExists(ctx context.Context, tx *sql.Tx, name string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspect schema: %w", err)
	}
	return n > 0, nil
}
