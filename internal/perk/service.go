// Package perk manages role perks and pays their recurring crown bonuses.
package perk

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/repository"
)

// MemberSource enumerates the members of the managed community with their roles
type MemberSource interface {
	Members(ctx context.Context) ([]domain.Member, error)
}

// MemberSourceFunc adapts a function to MemberSource
type MemberSourceFunc func(ctx context.Context) ([]domain.Member, error)

// Members calls f(ctx)
func (f MemberSourceFunc) Members(ctx context.Context) ([]domain.Member, error) {
	return f(ctx)
}

// Crediter is the slice of the ledger the payout needs
type Crediter interface {
	CreditFrom(ctx context.Context, userID string, amount int64, source string) (int64, error)
}

// Service defines the perk operations
type Service interface {
	AddPerk(ctx context.Context, roleID, perkName string, bonus int64) error
	RemovePerk(ctx context.Context, roleID string) error
	ListPerks(ctx context.Context) ([]domain.Perk, error)
	// Payout credits every member the sum of the bonuses of the perk roles they hold.
	Payout(ctx context.Context, roster MemberSource) (*domain.PayoutReport, error)
}

type service struct {
	repo   repository.Perk
	ledger Crediter
}

// NewService creates a new perk service
func NewService(repo repository.Perk, ledger Crediter) Service {
	return &service{repo: repo, ledger: ledger}
}

// AddPerk creates a perk, or replaces the one already bound to roleID
func (s *service) AddPerk(ctx context.Context, roleID, perkName string, bonus int64) error {
	perkName = strings.TrimSpace(perkName)
	if perkName == "" {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyPerkName)
	}
	if bonus < 0 {
		return fmt.Errorf(ErrMsgNegativeBonusFmt, bonus, domain.ErrInvalidAmount)
	}
	p := domain.Perk{RoleID: strings.TrimSpace(roleID), PerkName: perkName, Bonus: bonus}
	if err := s.repo.UpsertPerk(ctx, p); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPerkSaved, "role_id", p.RoleID, "perk", perkName, "bonus", bonus)
	return nil
}

// RemovePerk deletes the perk for roleID or returns domain.ErrPerkNotFound
func (s *service) RemovePerk(ctx context.Context, roleID string) error {
	roleID = strings.TrimSpace(roleID)
	if err := s.repo.DeletePerk(ctx, roleID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPerkRemoved, "role_id", roleID)
	return nil
}

func (s *service) ListPerks(ctx context.Context) ([]domain.Perk, error) {
	return s.repo.ListPerks(ctx)
}
