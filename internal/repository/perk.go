package repository

import (
	"context"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// Perk defines the interface for perk persistence
type Perk interface {
	UpsertPerk(ctx context.Context, perk domain.Perk) error
	DeletePerk(ctx context.Context, roleID string) error
	ListPerks(ctx context.Context) ([]domain.Perk, error)
}
