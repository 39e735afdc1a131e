package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

func TestPerkRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPerkRepository(setupTestDB(t))

	require.NoError(t, repo.UpsertPerk(ctx, domain.Perk{RoleID: "1234567890123", PerkName: "Booster", Bonus: 10}))
	require.NoError(t, repo.UpsertPerk(ctx, domain.Perk{RoleID: "42", PerkName: "Patron", Bonus: 0}))
	require.NoError(t, repo.UpsertPerk(ctx, domain.Perk{RoleID: "1234567890123", PerkName: "Booster+", Bonus: 12}))

	perks, err := repo.ListPerks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Perk{
		{RoleID: "42", PerkName: "Patron", Bonus: 0},
		{RoleID: "1234567890123", PerkName: "Booster+", Bonus: 12},
	}, perks)

	require.NoError(t, repo.DeletePerk(ctx, "42"))
	assert.ErrorIs(t, repo.DeletePerk(ctx, "42"), domain.ErrPerkNotFound)
	assert.ErrorIs(t, repo.DeletePerk(ctx, "role-a"), domain.ErrValidation)
	assert.ErrorIs(t, repo.UpsertPerk(ctx, domain.Perk{RoleID: "-5"}), domain.ErrValidation)
}
