// Package catalog loads the shop item definitions into the store and serves
// read-only lookups for the shop.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/metrics"
	"github.com/osse101/GrimArmory_Go/internal/repository"
)

// Service defines the catalog operations
type Service interface {
	Import(ctx context.Context, entries map[string]domain.CatalogEntry) (*domain.ImportReport, error)
	ImportFile(ctx context.Context, path string) (*domain.ImportReport, error)
	ListItems(ctx context.Context) ([]domain.CatalogItem, error)
	ListByCategory(ctx context.Context, categoryTag string) ([]domain.CatalogItem, error)
	Categories(ctx context.Context) ([]string, error)
	GetItem(ctx context.Context, itemName string) (*domain.CatalogItem, error)
}

type service struct {
	repo     repository.Catalog
	cache    *itemCache
	validate *validator.Validate
}

// NewService creates a catalog service with an LRU of the given size and TTL
func NewService(repo repository.Catalog, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    newItemCache(cacheSize, cacheTTL),
		validate: validator.New(),
	}
}

// Import upserts every entry. Invalid entries are recorded in the report and
// skipped; they never block the rest of the batch. Only a failure to open or
// commit the transaction is returned as an error.
func (s *service) Import(ctx context.Context, entries map[string]domain.CatalogEntry) (*domain.ImportReport, error) {
	return s.importEntries(ctx, entries, nil)
}

func (s *service) importEntries(ctx context.Context, entries map[string]domain.CatalogEntry, failures []domain.ImportFailure) (*domain.ImportReport, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgImportStarted, "entries", len(entries))

	report := &domain.ImportReport{Failures: failures}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	for _, name := range names {
		entry := entries[name]
		if err := s.validateEntry(name, entry); err != nil {
			report.Failures = append(report.Failures, domain.ImportFailure{ItemName: name, Reason: err.Error()})
			log.Warn(LogMsgEntryRejected, "item", name, "error", err)
			continue
		}
		if err := tx.UpsertItem(ctx, entry.ToItem(strings.TrimSpace(name))); err != nil {
			report.Failures = append(report.Failures, domain.ImportFailure{ItemName: name, Reason: err.Error()})
			log.Warn(LogMsgEntryRejected, "item", name, "error", err)
			continue
		}
		report.Imported++
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	s.cache.Clear()

	metrics.CatalogItemsImported.Add(float64(report.Imported))
	metrics.CatalogImportFailures.Add(float64(len(report.Failures)))
	log.Info(LogMsgImportCompleted, "imported", report.Imported, "failed", len(report.Failures))
	return report, nil
}

func (s *service) validateEntry(name string, entry domain.CatalogEntry) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyItemName)
	}
	if err := s.validate.Struct(entry); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// ImportFile reads a catalog definition file (item name to entry) and imports it.
// A file that is not a JSON object fails with domain.ErrImport; an entry that
// does not decode is recorded as a failure like any other invalid entry.
func (s *service) ImportFile(ctx context.Context, path string) (*domain.ImportReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFileFmt, path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFileFmt, path, err, domain.ErrImport)
	}

	entries := make(map[string]domain.CatalogEntry, len(raw))
	var failures []domain.ImportFailure
	for name, msg := range raw {
		var entry domain.CatalogEntry
		if err := json.NewDecoder(bytes.NewReader(msg)).Decode(&entry); err != nil {
			failures = append(failures, domain.ImportFailure{
				ItemName: name,
				Reason:   fmt.Sprintf(ErrMsgMalformedEntryFmt, err),
			})
			continue
		}
		entries[name] = entry
	}
	sort.Slice(failures, func(i, j int) bool { return failures[i].ItemName < failures[j].ItemName })

	return s.importEntries(ctx, entries, failures)
}

// ListItems returns the whole catalog
func (s *service) ListItems(ctx context.Context) ([]domain.CatalogItem, error) {
	return s.repo.ListItems(ctx)
}

// ListByCategory returns the items carrying categoryTag
func (s *service) ListByCategory(ctx context.Context, categoryTag string) ([]domain.CatalogItem, error) {
	return s.repo.ListByCategory(ctx, categoryTag)
}

// Categories returns the distinct category tags
func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// GetItem returns a catalog item, served from the cache when possible
func (s *service) GetItem(ctx context.Context, itemName string) (*domain.CatalogItem, error) {
	if item, ok := s.cache.Get(itemName); ok {
		return item, nil
	}
	gen := s.cache.Generation()
	item, err := s.repo.GetItem(ctx, strings.TrimSpace(itemName))
	if err != nil {
		return nil, err
	}
	s.cache.Set(*item, gen)
	return item, nil
}
