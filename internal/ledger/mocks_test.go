package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/repository"
)

// MockRepository implements repository.Account for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) EnsureAccount(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AccountTx), args.Error(1)
}

// MockTx implements repository.AccountTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) EnsureAccount(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockTx) UpdateBalance(ctx context.Context, userID string, balance int64) error {
	return m.Called(ctx, userID, balance).Error(0)
}

func (m *MockTx) UpdateInventory(ctx context.Context, userID string, inventory []domain.InventoryItem) error {
	return m.Called(ctx, userID, inventory).Error(0)
}

func (m *MockTx) UpdateCharacters(ctx context.Context, userID string, characters []domain.Character) error {
	return m.Called(ctx, userID, characters).Error(0)
}

func (m *MockTx) ReplaceAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}
