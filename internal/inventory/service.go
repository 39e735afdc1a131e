// Package inventory manages the item stacks stored on each account.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/concurrency"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/repository"
	"github.com/osse101/GrimArmory_Go/internal/utils"
)

// Service defines the inventory operations
type Service interface {
	AdjustItem(ctx context.Context, userID, itemName string, delta int) ([]domain.InventoryItem, error)
	AddItem(ctx context.Context, userID, itemName string, quantity int) ([]domain.InventoryItem, error)
	RemoveItem(ctx context.Context, userID, itemName string, quantity int) ([]domain.InventoryItem, error)
	ListInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error)
}

type service struct {
	repo  repository.Account
	locks *concurrency.LockManager
}

// NewService creates an inventory service sharing the account lock manager
func NewService(repo repository.Account, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{repo: repo, locks: locks}
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyUserID)
	}
	return nil
}

// AdjustItem is the single inventory primitive. A positive delta merges into
// the stack with the same (case-folded) name or appends a new one; a negative
// delta subtracts and deletes the stack once it reaches zero.
func (s *service) AdjustItem(ctx context.Context, userID, itemName string, delta int) ([]domain.InventoryItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyItemName)
	}
	if delta == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, ErrMsgZeroDelta)
	}

	unlock := s.locks.Lock(concurrency.AccountKey(userID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if delta > 0 {
		if _, err := tx.EnsureAccount(ctx, userID); err != nil {
			return nil, err
		}
	}
	acct, err := tx.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, ok := utils.ApplyItemDelta(acct.Inventory, itemName, delta)
	if !ok {
		return nil, fmt.Errorf(ErrMsgItemNotInventoryFmt, itemName, domain.ErrItemNotFound)
	}
	if err := tx.UpdateInventory(ctx, userID, items); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgInventoryAdjusted, "user_id", userID, "item", itemName, "delta", delta)
	return items, nil
}

// AddItem adds a positive quantity of an item
func (s *service) AddItem(ctx context.Context, userID, itemName string, quantity int) ([]domain.InventoryItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf(ErrMsgNonPositiveQtyFmt, quantity, domain.ErrInvalidAmount)
	}
	return s.AdjustItem(ctx, userID, itemName, quantity)
}

// RemoveItem removes a positive quantity of an item
func (s *service) RemoveItem(ctx context.Context, userID, itemName string, quantity int) ([]domain.InventoryItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf(ErrMsgNonPositiveQtyFmt, quantity, domain.ErrInvalidAmount)
	}
	return s.AdjustItem(ctx, userID, itemName, -quantity)
}

// ListInventory returns the stacks in insertion order
func (s *service) ListInventory(ctx context.Context, userID string) ([]domain.InventoryItem, error) {
	acct, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return acct.Inventory, nil
}
