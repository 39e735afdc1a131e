package bootstrap

import (
	"github.com/jmoiron/sqlx"

	"github.com/osse101/GrimArmory_Go/internal/database/sqlite"
	"github.com/osse101/GrimArmory_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Accounts repository.Account
	Catalog  repository.Catalog
	Perks    repository.Perk
}

// InitializeRepositories creates all repository implementations over one store
func InitializeRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Accounts: sqlite.NewAccountRepository(db),
		Catalog:  sqlite.NewCatalogRepository(db),
		Perks:    sqlite.NewPerkRepository(db),
	}
}
