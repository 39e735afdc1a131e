// Package profile manages the roleplay characters linked to an account.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GrimArmory_Go/internal/concurrency"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/repository"
)

// Service defines the character profile operations
type Service interface {
	AddCharacter(ctx context.Context, userID, name, title, sheetURL string) ([]domain.Character, error)
	RemoveCharacter(ctx context.Context, userID, name string) (int, error)
	ListCharacters(ctx context.Context, userID string) ([]domain.Character, error)
}

type service struct {
	repo     repository.Account
	locks    *concurrency.LockManager
	validate *validator.Validate
}

// NewService creates a profile service sharing the account lock manager
func NewService(repo repository.Account, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:     repo,
		locks:    locks,
		validate: newValidator(),
	}
}

// AddCharacter appends a character, creating the account if needed.
// Names are unique per account; a second character with the same name is rejected.
func (s *service) AddCharacter(ctx context.Context, userID, name, title, sheetURL string) ([]domain.Character, error) {
	in := characterInput{
		Name:     strings.TrimSpace(name),
		Title:    strings.TrimSpace(title),
		SheetURL: strings.TrimSpace(sheetURL),
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	unlock := s.locks.Lock(concurrency.AccountKey(userID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.EnsureAccount(ctx, userID); err != nil {
		return nil, err
	}
	acct, err := tx.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range acct.Characters {
		if c.Name == in.Name {
			return nil, fmt.Errorf(ErrMsgDuplicateCharacterFmt, in.Name, domain.ErrDuplicateCharacter)
		}
	}

	chars := append(acct.Characters, domain.Character{Name: in.Name, Title: in.Title, SheetURL: in.SheetURL})
	if err := tx.UpdateCharacters(ctx, userID, chars); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCharacterAdded, "user_id", userID, "name", in.Name)
	return chars, nil
}

// RemoveCharacter deletes every character named name and returns how many
// were removed. Zero matches, or no account at all, is not an error.
func (s *service) RemoveCharacter(ctx context.Context, userID, name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	unlock := s.locks.Lock(concurrency.AccountKey(userID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer repository.SafeRollback(ctx, tx)

	acct, err := tx.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return 0, nil
		}
		return 0, err
	}

	kept := make([]domain.Character, 0, len(acct.Characters))
	for _, c := range acct.Characters {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	removed := len(acct.Characters) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := tx.UpdateCharacters(ctx, userID, kept); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info(LogMsgCharacterRemoved, "user_id", userID, "name", name, "count", removed)
	return removed, nil
}

// ListCharacters returns the account's characters in insertion order
func (s *service) ListCharacters(ctx context.Context, userID string) ([]domain.Character, error) {
	acct, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return acct.Characters, nil
}
