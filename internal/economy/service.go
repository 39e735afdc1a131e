// Package economy implements the shop: quoting and buying catalog items with crowns.
package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GrimArmory_Go/internal/concurrency"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/repository"
)

// ItemLookup resolves a catalog item by name
type ItemLookup interface {
	GetItem(ctx context.Context, itemName string) (*domain.CatalogItem, error)
}

// Service defines the interface for shop operations
type Service interface {
	// Quote prices a purchase against the buyer's current balance without mutating anything.
	Quote(ctx context.Context, userID, itemName string, quantity int) (*domain.PurchaseQuote, error)
	// BuyItem debits the cost and adds the items in one transaction.
	BuyItem(ctx context.Context, userID, itemName string, quantity int) (*domain.Purchase, error)
}

type service struct {
	repo    repository.Account
	catalog ItemLookup
	locks   *concurrency.LockManager
}

// NewService creates a new shop service. The lock manager must be the one
// shared with the ledger and inventory services.
func NewService(repo repository.Account, catalog ItemLookup, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:    repo,
		catalog: catalog,
		locks:   locks,
	}
}

func (s *service) resolveItem(ctx context.Context, itemName string) (*domain.CatalogItem, error) {
	item, err := s.catalog.GetItem(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveItemFailedFmt, itemName, err)
	}
	return item, nil
}

func (s *service) Quote(ctx context.Context, userID, itemName string, quantity int) (*domain.PurchaseQuote, error) {
	if err := validateRequest(userID, itemName, quantity); err != nil {
		return nil, err
	}
	item, err := s.resolveItem(ctx, itemName)
	if err != nil {
		return nil, err
	}
	cost, err := totalCost(item.Price, quantity)
	if err != nil {
		return nil, err
	}

	quote := &domain.PurchaseQuote{Item: *item, Quantity: quantity, TotalCost: cost}
	acct, err := s.repo.GetAccount(ctx, userID)
	switch {
	case err == nil:
		quote.Balance = acct.Balance
	case errors.Is(err, domain.ErrAccountNotFound):
		// a buyer without an account quotes against zero crowns
	default:
		return nil, err
	}
	return quote, nil
}
