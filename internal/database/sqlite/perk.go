package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/repository"
)

const (
	queryUpsertPerk = `
		INSERT INTO perks (role_id, perk_name, bonus) VALUES (?, ?, ?)
		ON CONFLICT (role_id) DO UPDATE SET
			perk_name = excluded.perk_name,
			bonus = excluded.bonus`

	queryDeletePerk = `DELETE FROM perks WHERE role_id = ?`

	queryListPerks = `SELECT role_id, perk_name, bonus FROM perks ORDER BY role_id`
)

// PerkRepository implements repository.Perk for SQLite
type PerkRepository struct {
	db *sqlx.DB
}

// NewPerkRepository creates a new PerkRepository
func NewPerkRepository(db *sqlx.DB) *PerkRepository {
	return &PerkRepository{db: db}
}

// UpsertPerk creates the perk or replaces the one configured for the same role
func (r *PerkRepository) UpsertPerk(ctx context.Context, perk domain.Perk) error {
	roleID, err := ParseRoleID(perk.RoleID)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, queryUpsertPerk, roleID, perk.PerkName, perk.Bonus); err != nil {
		return storeErr(opUpsertPerk, err)
	}
	return nil
}

// DeletePerk removes the perk for roleID or returns domain.ErrPerkNotFound
func (r *PerkRepository) DeletePerk(ctx context.Context, roleID string) error {
	id, err := ParseRoleID(roleID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, queryDeletePerk, id)
	if err != nil {
		return storeErr(opDeletePerk, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr(opDeletePerk, err)
	}
	if n == 0 {
		return domain.ErrPerkNotFound
	}
	return nil
}

// ListPerks returns every configured perk
func (r *PerkRepository) ListPerks(ctx context.Context) ([]domain.Perk, error) {
	var rows []perkRow
	if err := r.db.SelectContext(ctx, &rows, queryListPerks); err != nil {
		return nil, storeErr(opListPerks, err)
	}
	perks := make([]domain.Perk, 0, len(rows))
	for _, row := range rows {
		perks = append(perks, row.toDomain())
	}
	return perks, nil
}

var _ repository.Perk = (*PerkRepository)(nil)
