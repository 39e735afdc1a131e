package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrimArmory_Go/internal/concurrency"
	"github.com/osse101/GrimArmory_Go/internal/database/sqlite"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/testing/dbtest"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(sqlite.NewAccountRepository(dbtest.Open(t)), concurrency.NewLockManager())
}

func seed(t *testing.T, svc Service, userID string, balance int64) {
	t.Helper()
	_, err := svc.Credit(context.Background(), userID, balance)
	require.NoError(t, err)
}

func TestEnsureAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.EnsureAccount(ctx, "u1"))
	seed(t, svc, "u1", 5)
	require.NoError(t, svc.EnsureAccount(ctx, "u1"))

	balance, err := svc.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), balance, "second ensure must not reset the account")

	assert.ErrorIs(t, svc.EnsureAccount(ctx, "  "), domain.ErrValidation)
}

func TestEnsureAccount_Concurrent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.EnsureAccount(ctx, "shared"))
		}()
		go func() {
			defer wg.Done()
			_, err := svc.Credit(ctx, "shared", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := svc.GetBalance(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, int64(20), balance)
}

func TestCredit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("creates the account", func(t *testing.T) {
		balance, err := svc.Credit(ctx, "new", 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), balance)
	})

	t.Run("negative correction within balance", func(t *testing.T) {
		balance, err := svc.Credit(ctx, "new", -3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), balance)
	})

	t.Run("negative correction cannot overdraw", func(t *testing.T) {
		_, err := svc.Credit(ctx, "new", -10)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		balance, err := svc.GetBalance(ctx, "new")
		require.NoError(t, err)
		assert.Equal(t, int64(4), balance)
	})

	t.Run("zero is a no-op", func(t *testing.T) {
		balance, err := svc.Credit(ctx, "new", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(4), balance)
	})
}

func TestDebit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seed(t, svc, "u1", 30)

	tests := []struct {
		name    string
		userID  string
		amount  int64
		wantErr error
		want    int64
	}{
		{"zero amount", "u1", 0, domain.ErrInvalidAmount, 30},
		{"negative amount", "u1", -5, domain.ErrInvalidAmount, 30},
		{"missing account", "ghost", 5, domain.ErrAccountNotFound, 30},
		{"overdraw", "u1", 31, domain.ErrInsufficientFunds, 30},
		{"partial", "u1", 10, nil, 20},
		{"exact", "u1", 20, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Debit(ctx, tt.userID, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			balance, err := svc.GetBalance(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, balance)
		})
	}
}

func TestConcurrentDebits_NeverNegative(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seed(t, svc, "u1", 100)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Debit(ctx, "u1", 7); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
			}
		}()
	}
	wg.Wait()

	balance, err := svc.GetBalance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 14, succeeded)
	assert.Equal(t, int64(100-14*7), balance)
	assert.GreaterOrEqual(t, balance, int64(0))
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("conserves total", func(t *testing.T) {
		svc := newTestService(t)
		seed(t, svc, "a", 80)
		seed(t, svc, "b", 20)

		result, err := svc.Transfer(ctx, "a", "b", 30)
		require.NoError(t, err)
		assert.Equal(t, &domain.TransferResult{FromUserID: "a", ToUserID: "b", Amount: 30, FromBalance: 50, ToBalance: 50}, result)

		a, _ := svc.GetBalance(ctx, "a")
		b, _ := svc.GetBalance(ctx, "b")
		assert.Equal(t, int64(100), a+b)
	})

	t.Run("creates recipient", func(t *testing.T) {
		svc := newTestService(t)
		seed(t, svc, "a", 10)

		_, err := svc.Transfer(ctx, "a", "fresh", 10)
		require.NoError(t, err)

		balance, err := svc.GetBalance(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, int64(10), balance)
	})

	t.Run("give 100 with balance 50 fails and changes nothing", func(t *testing.T) {
		svc := newTestService(t)
		seed(t, svc, "u1", 50)
		seed(t, svc, "u2", 3)

		_, err := svc.Transfer(ctx, "u1", "u2", 100)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		u1, _ := svc.GetBalance(ctx, "u1")
		u2, _ := svc.GetBalance(ctx, "u2")
		assert.Equal(t, int64(50), u1)
		assert.Equal(t, int64(3), u2)
	})

	t.Run("insufficient funds does not create recipient", func(t *testing.T) {
		svc := newTestService(t)
		seed(t, svc, "u1", 1)

		_, err := svc.Transfer(ctx, "u1", "nobody", 5)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		_, err = svc.GetBalance(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		svc := newTestService(t)
		seed(t, svc, "u1", 10)

		_, err := svc.Transfer(ctx, "u1", "u2", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		_, err = svc.Transfer(ctx, "u1", "u1", 5)
		assert.ErrorIs(t, err, domain.ErrSelfTransfer)
		_, err = svc.Transfer(ctx, "ghost", "u1", 5)
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestTransfer_ConcurrentOppositeDirections(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seed(t, svc, "a", 500)
	seed(t, svc, "b", 500)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(ctx, "a", "b", 3)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := svc.Transfer(ctx, "b", "a", 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	a, _ := svc.GetBalance(ctx, "a")
	b, _ := svc.GetBalance(ctx, "b")
	assert.Equal(t, int64(1000), a+b)
	assert.Equal(t, int64(500+25*2), a)
}

func TestGetLeaderboard(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	for i := 1; i <= 12; i++ {
		seed(t, svc, fmt.Sprintf("user%02d", i), int64(i*10))
	}

	entries, err := svc.GetLeaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, DefaultLeaderboardSize)
	assert.Equal(t, "user12", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "user03", entries[9].UserID)

	entries, err = svc.GetLeaderboard(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestAdjustBalance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seed(t, svc, "u1", 15)

	t.Run("minus 20 on balance 15 is rejected", func(t *testing.T) {
		balance, err := svc.AdjustBalance(ctx, "u1", -20)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, int64(15), balance)

		current, err := svc.GetBalance(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(15), current)
	})

	t.Run("positive delta credits", func(t *testing.T) {
		balance, err := svc.AdjustBalance(ctx, "u1", 25)
		require.NoError(t, err)
		assert.Equal(t, int64(40), balance)
	})

	t.Run("negative delta within balance", func(t *testing.T) {
		balance, err := svc.AdjustBalance(ctx, "u1", -40)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("zero delta", func(t *testing.T) {
		_, err := svc.AdjustBalance(ctx, "u1", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestGrantForMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("length 47 grants 5 to a fresh account", func(t *testing.T) {
		svc := newTestService(t)

		granted, err := svc.GrantForMessage(ctx, "u1", 47)
		require.NoError(t, err)
		assert.Equal(t, int64(5), granted)

		balance, err := svc.GetBalance(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(5), balance)
	})

	t.Run("short message still creates the account", func(t *testing.T) {
		svc := newTestService(t)

		granted, err := svc.GrantForMessage(ctx, "u2", 4)
		require.NoError(t, err)
		assert.Equal(t, int64(0), granted)

		balance, err := svc.GetBalance(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("halves round to even", func(t *testing.T) {
		svc := newTestService(t)

		granted, err := svc.GrantForMessage(ctx, "u3", 25)
		require.NoError(t, err)
		assert.Equal(t, int64(2), granted)

		granted, err = svc.GrantForMessage(ctx, "u3", 35)
		require.NoError(t, err)
		assert.Equal(t, int64(4), granted)
	})

	t.Run("negative length", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.GrantForMessage(ctx, "u4", -1)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}
