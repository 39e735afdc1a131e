// Package backup exports every account to a JSON document keyed by user id
// and imports such a document back, all or nothing.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/repository"
	"github.com/osse101/GrimArmory_Go/internal/utils"
	"github.com/osse101/GrimArmory_Go/internal/validation"
)

// AccountRecord is one value of the export document
type AccountRecord struct {
	Crowns     int64                  `json:"crowns"`
	Inventory  []domain.InventoryItem `json:"inventory"`
	Characters []domain.Character     `json:"characters"`
}

// importRecord keeps the lists raw so legacy flat inventories can be converted
type importRecord struct {
	Crowns     int64           `json:"crowns"`
	Inventory  json.RawMessage `json:"inventory"`
	Characters json.RawMessage `json:"characters"`
}

// Service defines the backup operations
type Service interface {
	Export(ctx context.Context) (map[string]AccountRecord, error)
	ExportFile(ctx context.Context, path string) (int, error)
	Import(ctx context.Context, data []byte) (int, error)
	// ImportFile imports path; a missing file imports nothing and is not an error.
	ImportFile(ctx context.Context, path string) (int, error)
}

type service struct {
	repo      repository.Account
	validator validation.SchemaValidator
}

// NewService creates a backup service
func NewService(repo repository.Account, validator validation.SchemaValidator) Service {
	if validator == nil {
		validator = validation.NewSchemaValidator()
	}
	return &service{repo: repo, validator: validator}
}

func (s *service) Export(ctx context.Context) (map[string]AccountRecord, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]AccountRecord, len(accounts))
	for _, acct := range accounts {
		rec := AccountRecord{
			Crowns:     acct.Balance,
			Inventory:  acct.Inventory,
			Characters: acct.Characters,
		}
		if rec.Inventory == nil {
			rec.Inventory = []domain.InventoryItem{}
		}
		if rec.Characters == nil {
			rec.Characters = []domain.Character{}
		}
		out[acct.UserID] = rec
	}
	return out, nil
}

// ExportFile writes the export document to path, creating its directory
func (s *service) ExportFile(ctx context.Context, path string) (int, error) {
	records, err := s.Export(ctx)
	if err != nil {
		return 0, err
	}
	if err := utils.SaveJSON(path, records); err != nil {
		return 0, fmt.Errorf(ErrMsgWriteExportFailedFmt, err)
	}
	logger.FromContext(ctx).Info(LogMsgExported, "path", path, "accounts", len(records))
	return len(records), nil
}

// Import validates and decodes the whole document before writing anything,
// then replaces every listed account in one transaction. Accounts absent from
// the document are left untouched.
func (s *service) Import(ctx context.Context, data []byte) (int, error) {
	log := logger.FromContext(ctx)

	accounts, err := s.decode(data)
	if err != nil {
		log.Warn(LogMsgImportRejected, "error", err)
		return 0, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer repository.SafeRollback(ctx, tx)

	for _, acct := range accounts {
		if err := tx.ReplaceAccount(ctx, acct); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	log.Info(LogMsgImported, "accounts", len(accounts))
	return len(accounts), nil
}

func (s *service) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.FromContext(ctx).Info(LogMsgImportFileAbsent, "path", path)
			return 0, nil
		}
		return 0, fmt.Errorf(ErrMsgReadExportFailedFmt, path, err)
	}
	return s.Import(ctx, data)
}

func (s *service) decode(data []byte) ([]domain.Account, error) {
	if err := s.validator.ValidateBytes(data, validation.SchemaAccountsExport); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, err, domain.ErrImport)
	}

	var raw map[string]importRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeFailedFmt, err, domain.ErrImport)
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	accounts := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		rec := raw[id]
		inventory, err := utils.ParseLegacyInventory(string(rec.Inventory))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgBadInventoryFmt, id, err, domain.ErrImport)
		}
		characters, err := utils.DecodeCharacters(string(rec.Characters))
		if err != nil {
			return nil, fmt.Errorf(ErrMsgBadCharactersFmt, id, err, domain.ErrImport)
		}
		accounts = append(accounts, domain.Account{
			UserID:     id,
			Balance:    rec.Crowns,
			Inventory:  inventory,
			Characters: characters,
		})
	}
	return accounts, nil
}
