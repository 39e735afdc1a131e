package bootstrap

import (
	"github.com/osse101/GrimArmory_Go/internal/admin"
	"github.com/osse101/GrimArmory_Go/internal/backup"
	"github.com/osse101/GrimArmory_Go/internal/catalog"
	"github.com/osse101/GrimArmory_Go/internal/concurrency"
	"github.com/osse101/GrimArmory_Go/internal/config"
	"github.com/osse101/GrimArmory_Go/internal/economy"
	"github.com/osse101/GrimArmory_Go/internal/inventory"
	"github.com/osse101/GrimArmory_Go/internal/ledger"
	"github.com/osse101/GrimArmory_Go/internal/perk"
	"github.com/osse101/GrimArmory_Go/internal/profile"
	"github.com/osse101/GrimArmory_Go/internal/validation"
)

// Services holds the domain services. Every account-mutating service shares
// one lock manager so per-account serialization spans services.
type Services struct {
	Ledger     ledger.Service
	Inventory  inventory.Service
	Profile    profile.Service
	Catalog    catalog.Service
	Shop       economy.Service
	Perks      perk.Service
	Backup     backup.Service
	Authorizer *admin.Authorizer
}

// InitializeServices wires the services over the repositories
func InitializeServices(cfg *config.Config, repos *Repositories) *Services {
	locks := concurrency.NewLockManager()

	ledgerSvc := ledger.NewService(repos.Accounts, locks)
	catalogSvc := catalog.NewService(repos.Catalog, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	return &Services{
		Ledger:     ledgerSvc,
		Inventory:  inventory.NewService(repos.Accounts, locks),
		Profile:    profile.NewService(repos.Accounts, locks),
		Catalog:    catalogSvc,
		Shop:       economy.NewService(repos.Accounts, catalogSvc, locks),
		Perks:      perk.NewService(repos.Perks, ledgerSvc),
		Backup:     backup.NewService(repos.Accounts, validation.NewSchemaValidator()),
		Authorizer: admin.NewAuthorizer(cfg.AdminRoleIDs(), cfg.AdminBypass),
	}
}
