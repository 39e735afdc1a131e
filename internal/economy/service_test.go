package economy

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrimArmory_Go/internal/concurrency"
	"github.com/osse101/GrimArmory_Go/internal/database/sqlite"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/repository"
	"github.com/osse101/GrimArmory_Go/internal/testing/dbtest"
)

// MockItemLookup implements ItemLookup for testing
type MockItemLookup struct {
	mock.Mock
}

func (m *MockItemLookup) GetItem(ctx context.Context, itemName string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogItem), args.Error(1)
}

type fixture struct {
	svc      Service
	accounts repository.Account
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db := dbtest.Open(t)
	accounts := sqlite.NewAccountRepository(db)
	items := sqlite.NewCatalogRepository(db)

	tx, err := items.BeginTx(ctx)
	require.NoError(t, err)
	for _, it := range []domain.CatalogItem{
		{ItemName: "Sword", Price: 30, CategoryTag: "weapon"},
		{ItemName: "Pebble", Price: 0, CategoryTag: "junk"},
	} {
		require.NoError(t, tx.UpsertItem(ctx, it))
	}
	require.NoError(t, tx.Commit(ctx))

	return fixture{
		svc:      NewService(accounts, items, concurrency.NewLockManager()),
		accounts: accounts,
	}
}

func (f fixture) seed(t *testing.T, acct domain.Account) {
	t.Helper()
	ctx := context.Background()
	tx, err := f.accounts.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.ReplaceAccount(ctx, acct))
	require.NoError(t, tx.Commit(ctx))
}

func TestBuyItem_Success(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.seed(t, domain.Account{UserID: "u1", Balance: 100, Inventory: []domain.InventoryItem{{ItemName: "Sword", Quantity: 1}}})

	purchase, err := f.svc.BuyItem(ctx, "u1", "sword", 2)
	require.NoError(t, err)
	assert.Equal(t, &domain.Purchase{
		UserID: "u1", ItemName: "Sword", Quantity: 2, TotalCost: 60, Balance: 40, Owned: 3,
	}, purchase)

	acct, err := f.accounts.GetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(40), acct.Balance)
	assert.Equal(t, []domain.InventoryItem{{ItemName: "Sword", Quantity: 3}}, acct.Inventory)
}

func TestBuyItem_InsufficientFundsChangesNothing(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.seed(t, domain.Account{UserID: "u1", Balance: 50})

	_, err := f.svc.BuyItem(ctx, "u1", "Sword", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	acct, err := f.accounts.GetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), acct.Balance)
	assert.Empty(t, acct.Inventory)
}

func TestBuyItem_MissingAccount(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.BuyItem(ctx, "ghost", "Sword", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	_, err = f.accounts.GetAccount(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	purchase, err := f.svc.BuyItem(ctx, "ghost", "Pebble", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), purchase.Balance)
	assert.Equal(t, 1, purchase.Owned)
}

func TestBuyItem_InvalidInputs(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.seed(t, domain.Account{UserID: "u1", Balance: 100})

	tests := []struct {
		name     string
		userID   string
		item     string
		quantity int
		wantErr  error
	}{
		{"zero quantity", "u1", "Sword", 0, domain.ErrInvalidAmount},
		{"negative quantity", "u1", "Sword", -1, domain.ErrInvalidAmount},
		{"over max", "u1", "Sword", MaxPurchaseQuantity + 1, domain.ErrInvalidAmount},
		{"blank item", "u1", " ", 1, domain.ErrValidation},
		{"blank user", "", "Sword", 1, domain.ErrValidation},
		{"unknown item", "u1", "Bow", 1, domain.ErrItemNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.BuyItem(ctx, tt.userID, tt.item, tt.quantity)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	acct, err := f.accounts.GetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), acct.Balance)
}

func TestBuyItem_ConcurrentBuyersNeverOverspend(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.seed(t, domain.Account{UserID: "u1", Balance: 100})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.BuyItem(ctx, "u1", "Sword", 1); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, successes)
	acct, err := f.accounts.GetAccount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), acct.Balance)
	assert.Equal(t, []domain.InventoryItem{{ItemName: "Sword", Quantity: 3}}, acct.Inventory)
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.seed(t, domain.Account{UserID: "u1", Balance: 45})

	quote, err := f.svc.Quote(ctx, "u1", "Sword", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(60), quote.TotalCost)
	assert.Equal(t, int64(45), quote.Balance)
	assert.False(t, quote.CanAfford())

	quote, err = f.svc.Quote(ctx, "nobody", "Pebble", 5)
	require.NoError(t, err)
	assert.True(t, quote.CanAfford())
}

func TestQuote_LookupFailure(t *testing.T) {
	ctx := context.Background()
	lookup := new(MockItemLookup)
	storeErr := errors.New("disk gone")
	lookup.On("GetItem", mock.Anything, "Sword").Return(nil, storeErr)

	svc := NewService(sqlite.NewAccountRepository(dbtest.Open(t)), lookup, nil)
	_, err := svc.Quote(ctx, "u1", "Sword", 1)
	assert.ErrorIs(t, err, storeErr)
	lookup.AssertExpectations(t)
}

func TestTotalCost_Overflow(t *testing.T) {
	_, err := totalCost(1<<62, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	cost, err := totalCost(7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(21), cost)
}
