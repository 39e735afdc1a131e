package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/repository"
)

const (
	catalogColumns = `item_name, price, description, category_tag, species_tag, icon`

	queryGetCatalogItem = `SELECT ` + catalogColumns + ` FROM catalog
		WHERE item_name = ? COLLATE NOCASE
		ORDER BY item_name = ? DESC
		LIMIT 1`

	queryListCatalog = `SELECT ` + catalogColumns + ` FROM catalog ORDER BY category_tag, item_name`

	queryListCatalogByCategory = `SELECT ` + catalogColumns + ` FROM catalog
		WHERE category_tag = ? ORDER BY item_name`

	queryCategories = `SELECT DISTINCT category_tag FROM catalog ORDER BY category_tag`

	// Full replacement, not a field merge
	queryUpsertCatalogItem = `
		INSERT INTO catalog (` + catalogColumns + `) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (item_name) DO UPDATE SET
			price = excluded.price,
			description = excluded.description,
			category_tag = excluded.category_tag,
			species_tag = excluded.species_tag,
			icon = excluded.icon`
)

// CatalogRepository implements repository.Catalog for SQLite
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CatalogTx implements repository.CatalogTx
type CatalogTx struct {
	tx *sqlx.Tx
}

// BeginTx starts a new write transaction
func (r *CatalogRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storeErr(opBeginTx, err)
	}
	return &CatalogTx{tx: tx}, nil
}

// GetItem returns the item or domain.ErrItemNotFound
func (r *CatalogRepository) GetItem(ctx context.Context, itemName string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	if err := r.db.GetContext(ctx, &item, queryGetCatalogItem, itemName, itemName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, storeErr(opGetItem, err)
	}
	return &item, nil
}

// ListItems returns the whole catalog grouped by category
func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	items := []domain.CatalogItem{}
	if err := r.db.SelectContext(ctx, &items, queryListCatalog); err != nil {
		return nil, storeErr(opListItems, err)
	}
	return items, nil
}

// ListByCategory returns the items carrying categoryTag
func (r *CatalogRepository) ListByCategory(ctx context.Context, categoryTag string) ([]domain.CatalogItem, error) {
	items := []domain.CatalogItem{}
	if err := r.db.SelectContext(ctx, &items, queryListCatalogByCategory, categoryTag); err != nil {
		return nil, storeErr(opListItems, err)
	}
	return items, nil
}

// Categories returns the distinct category tags in the catalog
func (r *CatalogRepository) Categories(ctx context.Context) ([]string, error) {
	tags := []string{}
	if err := r.db.SelectContext(ctx, &tags, queryCategories); err != nil {
		return nil, storeErr(opCategories, err)
	}
	return tags, nil
}

// Commit commits the transaction
func (t *CatalogTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return storeErr(opCommitTx, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *CatalogTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback()
}

// UpsertItem inserts the item or fully replaces the row with the same name
func (t *CatalogTx) UpsertItem(ctx context.Context, item domain.CatalogItem) error {
	_, err := t.tx.ExecContext(ctx, queryUpsertCatalogItem,
		item.ItemName, item.Price, item.Description, item.CategoryTag, item.SpeciesTag, item.Icon)
	if err != nil {
		return storeErr(opUpsertItem, err)
	}
	return nil
}

var (
	_ repository.Catalog   = (*CatalogRepository)(nil)
	_ repository.CatalogTx = (*CatalogTx)(nil)
)
