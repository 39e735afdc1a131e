package repository

import (
	"context"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// Catalog defines the interface for shop catalog persistence
type Catalog interface {
	// GetItem looks an item up by name, preferring an exact match over a case-insensitive one.
	GetItem(ctx context.Context, itemName string) (*domain.CatalogItem, error)
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
	ListByCategory(ctx context.Context, categoryTag string) ([]domain.CatalogItem, error)
	Categories(ctx context.Context) ([]string, error)

	BeginTx(ctx context.Context) (CatalogTx, error)
}

// CatalogTx defines the interface for catalog import transactions
type CatalogTx interface {
	Tx
	UpsertItem(ctx context.Context, item domain.CatalogItem) error
}
