package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GrimArmory_Go/internal/concurrency"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/metrics"
	"github.com/osse101/GrimArmory_Go/internal/repository"
	"github.com/osse101/GrimArmory_Go/internal/utils"
)

func (s *service) BuyItem(ctx context.Context, userID, itemName string, quantity int) (*domain.Purchase, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyItemCalled, "user_id", userID, "item", itemName, "quantity", quantity)

	purchase, err := s.buy(ctx, userID, itemName, quantity)
	if err != nil {
		log.Info(LogMsgPurchaseRejected, "user_id", userID, "item", itemName, "error", err)
		return nil, err
	}

	metrics.ItemsBought.WithLabelValues(purchase.ItemName).Add(float64(purchase.Quantity))
	if purchase.TotalCost > 0 {
		metrics.CrownsDebited.WithLabelValues(metrics.SourcePurchase).Add(float64(purchase.TotalCost))
	}
	log.Info(LogMsgItemPurchased, "user_id", userID, "item", purchase.ItemName, "quantity", quantity, "cost", purchase.TotalCost)
	return purchase, nil
}

func (s *service) buy(ctx context.Context, userID, itemName string, quantity int) (*domain.Purchase, error) {
	// 1. Validate request
	if err := validateRequest(userID, itemName, quantity); err != nil {
		return nil, err
	}

	// 2. Resolve item and price
	item, err := s.resolveItem(ctx, itemName)
	if err != nil {
		return nil, err
	}
	cost, err := totalCost(item.Price, quantity)
	if err != nil {
		return nil, err
	}

	// 3. Serialize with every other writer of this account
	unlock := s.locks.Lock(concurrency.AccountKey(userID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	// 4. Check funds
	acct, err := tx.GetAccount(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrAccountNotFound) && cost == 0:
		// free items can be claimed by a brand-new account
		if _, err := tx.EnsureAccount(ctx, userID); err != nil {
			return nil, err
		}
		acct = &domain.Account{UserID: userID}
	case errors.Is(err, domain.ErrAccountNotFound):
		return nil, fmt.Errorf(ErrMsgCannotAffordFmt, quantity, item.ItemName, cost, 0, domain.ErrInsufficientFunds)
	default:
		return nil, err
	}
	if acct.Balance < cost {
		return nil, fmt.Errorf(ErrMsgCannotAffordFmt, quantity, item.ItemName, cost, acct.Balance, domain.ErrInsufficientFunds)
	}

	// 5. Apply both writes
	newBalance := acct.Balance - cost
	if cost > 0 {
		if err := tx.UpdateBalance(ctx, userID, newBalance); err != nil {
			return nil, err
		}
	}
	inventory, _ := utils.ApplyItemDelta(acct.Inventory, item.ItemName, quantity)
	if err := tx.UpdateInventory(ctx, userID, inventory); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	_, owned := utils.FindItem(inventory, item.ItemName)
	return &domain.Purchase{
		UserID:    userID,
		ItemName:  item.ItemName,
		Quantity:  quantity,
		TotalCost: cost,
		Balance:   newBalance,
		Owned:     owned,
	}, nil
}
