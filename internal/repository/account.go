package repository

import (
	"context"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// Account defines the interface for account persistence
type Account interface {
	// EnsureAccount inserts a zero-balance account if absent and reports whether it was created.
	EnsureAccount(ctx context.Context, userID string) (bool, error)
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	BeginTx(ctx context.Context) (AccountTx, error)
}

// AccountTx defines the interface for account transactions.
// Every read inside the transaction observes the write lock taken at begin.
type AccountTx interface {
	Tx
	EnsureAccount(ctx context.Context, userID string) (bool, error)
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, userID string, balance int64) error
	UpdateInventory(ctx context.Context, userID string, inventory []domain.InventoryItem) error
	UpdateCharacters(ctx context.Context, userID string, characters []domain.Character) error
	// ReplaceAccount overwrites (or inserts) a whole account row.
	ReplaceAccount(ctx context.Context, account domain.Account) error
}
