// Package sqlite implements the repository interfaces on the single-file SQLite store.
package sqlite

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/utils"
)

// storeErr wraps a driver failure so callers can match domain.ErrStore
// while the original error stays reachable for logging.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
}

// accountRow is the raw accounts row; list columns hold JSON text
type accountRow struct {
	UserID     string `db:"user_id"`
	Balance    int64  `db:"balance"`
	Inventory  string `db:"inventory"`
	Characters string `db:"characters"`
}

func (r accountRow) toDomain() (*domain.Account, error) {
	inv, err := utils.DecodeInventory(r.Inventory)
	if err != nil {
		return nil, storeErr(opDecodeAccount, err)
	}
	chars, err := utils.DecodeCharacters(r.Characters)
	if err != nil {
		return nil, storeErr(opDecodeAccount, err)
	}
	return &domain.Account{
		UserID:     r.UserID,
		Balance:    r.Balance,
		Inventory:  inv,
		Characters: chars,
	}, nil
}

// encodeList serializes an inventory or character list, never as JSON null
func encodeList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// perkRow mirrors the perks table, whose role_id column is an INTEGER snowflake
type perkRow struct {
	RoleID   int64  `db:"role_id"`
	PerkName string `db:"perk_name"`
	Bonus    int64  `db:"bonus"`
}

func (r perkRow) toDomain() domain.Perk {
	return domain.Perk{
		RoleID:   strconv.FormatInt(r.RoleID, 10),
		PerkName: r.PerkName,
		Bonus:    r.Bonus,
	}
}

// ParseRoleID converts a role snowflake to the stored integer form.
func ParseRoleID(roleID string) (int64, error) {
	id, err := strconv.ParseInt(roleID, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrValidation, opParseRoleID, roleID)
	}
	return id, nil
}
