// Package ledger owns account balances: lazy account creation, credits,
// enforcing debits, atomic transfers and the leaderboard.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/concurrency"
	"github.com/osse101/GrimArmory_Go/internal/domain"
	"github.com/osse101/GrimArmory_Go/internal/logger"
	"github.com/osse101/GrimArmory_Go/internal/metrics"
	"github.com/osse101/GrimArmory_Go/internal/repository"
	"github.com/osse101/GrimArmory_Go/internal/utils"
)

// Service defines the ledger operations
type Service interface {
	EnsureAccount(ctx context.Context, userID string) error
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	// CreditFrom is Credit with the metrics source label of the caller (perk, admin, ...).
	CreditFrom(ctx context.Context, userID string, amount int64, source string) (int64, error)
	Debit(ctx context.Context, userID string, amount int64) (int64, error)
	Transfer(ctx context.Context, fromUserID, toUserID string, amount int64) (*domain.TransferResult, error)
	GetBalance(ctx context.Context, userID string) (int64, error)
	GetLeaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error)
	AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error)
	GrantForMessage(ctx context.Context, userID string, messageLength int) (int64, error)
}

type service struct {
	repo  repository.Account
	locks *concurrency.LockManager
}

// NewService creates a ledger service. The lock manager is shared with every
// other service that mutates accounts so that all writes to one account are
// serialized in-process as well as by the store.
func NewService(repo repository.Account, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{repo: repo, locks: locks}
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyUserID)
	}
	return nil
}

// EnsureAccount creates a zero-balance account if absent
func (s *service) EnsureAccount(ctx context.Context, userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	created, err := s.repo.EnsureAccount(ctx, userID)
	if err != nil {
		return err
	}
	if created {
		logger.FromContext(ctx).Info(LogMsgAccountCreated, "user_id", userID)
	}
	return nil
}

// Credit adds amount to the balance, creating the account first.
// A negative amount is allowed as a correction but may never drive the
// balance below zero.
func (s *service) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	return s.credit(ctx, userID, amount, metrics.SourceCredit)
}

func (s *service) CreditFrom(ctx context.Context, userID string, amount int64, source string) (int64, error) {
	return s.credit(ctx, userID, amount, source)
}

func (s *service) credit(ctx context.Context, userID string, amount int64, source string) (int64, error) {
	if err := validateUserID(userID); err != nil {
		return 0, err
	}

	unlock := s.locks.Lock(concurrency.AccountKey(userID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.EnsureAccount(ctx, userID); err != nil {
		return 0, err
	}
	acct, err := tx.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}

	newBalance := acct.Balance + amount
	if newBalance < 0 {
		return acct.Balance, fmt.Errorf(ErrMsgNegativeCreditFmt, amount, newBalance, domain.ErrInsufficientFunds)
	}
	if amount == 0 {
		if err := tx.Commit(ctx); err != nil {
			return 0, err
		}
		return acct.Balance, nil
	}

	if err := tx.UpdateBalance(ctx, userID, newBalance); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	recordDelta(amount, source)
	logger.FromContext(ctx).Debug(LogMsgCredited, "user_id", userID, "amount", amount, "balance", newBalance, "source", source)
	return newBalance, nil
}

// Debit subtracts a positive amount, refusing to overdraw
func (s *service) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	return s.debit(ctx, userID, amount, metrics.SourceDebit)
}

func (s *service) debit(ctx context.Context, userID string, amount int64, source string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidAmount)
	}
	if err := validateUserID(userID); err != nil {
		return 0, err
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
		return 0, err
	}
	if acct.Balance < amount {
		return acct.Balance, fmt.Errorf(ErrMsgInsufficientFundsFmt, acct.Balance, amount, domain.ErrInsufficientFunds)
	}

	newBalance := acct.Balance - amount
	if err := tx.UpdateBalance(ctx, userID, newBalance); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	recordDelta(-amount, source)
	logger.FromContext(ctx).Debug(LogMsgDebited, "user_id", userID, "amount", amount, "balance", newBalance, "source", source)
	return newBalance, nil
}

// Transfer moves amount from one account to another in a single transaction.
// The recipient is created if absent.
func (s *service) Transfer(ctx context.Context, fromUserID, toUserID string, amount int64) (*domain.TransferResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.transfer(ctx, fromUserID, toUserID, amount)
	if err != nil {
		metrics.Transfers.WithLabelValues(transferResultLabel(err)).Inc()
		log.Info(LogMsgTransferRejected, "from", fromUserID, "to", toUserID, "amount", amount, "error", err)
		return nil, err
	}

	metrics.Transfers.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.CrownsDebited.WithLabelValues(metrics.SourceTransfer).Add(float64(amount))
	metrics.CrownsCredited.WithLabelValues(metrics.SourceTransfer).Add(float64(amount))
	log.Info(LogMsgTransferCompleted, "from", fromUserID, "to", toUserID, "amount", amount)
	return result, nil
}

func (s *service) transfer(ctx context.Context, fromUserID, toUserID string, amount int64) (*domain.TransferResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidAmountFmt, amount, domain.ErrInvalidAmount)
	}
	if err := validateUserID(fromUserID); err != nil {
		return nil, err
	}
	if err := validateUserID(toUserID); err != nil {
		return nil, err
	}
	if fromUserID == toUserID {
		return nil, domain.ErrSelfTransfer
	}

	unlock := s.locks.LockPair(concurrency.AccountKey(fromUserID), concurrency.AccountKey(toUserID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	sender, err := tx.GetAccount(ctx, fromUserID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf(ErrMsgSenderNotFoundFmt, fromUserID, err)
		}
		return nil, err
	}
	if sender.Balance < amount {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, sender.Balance, amount, domain.ErrInsufficientFunds)
	}

	if _, err := tx.EnsureAccount(ctx, toUserID); err != nil {
		return nil, err
	}
	recipient, err := tx.GetAccount(ctx, toUserID)
	if err != nil {
		return nil, err
	}

	result := &domain.TransferResult{
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		Amount:      amount,
		FromBalance: sender.Balance - amount,
		ToBalance:   recipient.Balance + amount,
	}
	if err := tx.UpdateBalance(ctx, fromUserID, result.FromBalance); err != nil {
		return nil, err
	}
	if err := tx.UpdateBalance(ctx, toUserID, result.ToBalance); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// GetBalance returns the balance or domain.ErrAccountNotFound
func (s *service) GetBalance(ctx context.Context, userID string) (int64, error) {
	acct, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

// GetLeaderboard returns the top n accounts; n <= 0 means the default size
func (s *service) GetLeaderboard(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}
	if n > MaxLeaderboardSize {
		n = MaxLeaderboardSize
	}
	return s.repo.GetLeaderboard(ctx, n)
}

// AdjustBalance is the administrator path: positive deltas credit,
// negative deltas debit with the same enforcement as Debit.
func (s *service) AdjustBalance(ctx context.Context, userID string, delta int64) (int64, error) {
	var (
		balance int64
		err     error
	)
	switch {
	case delta == 0:
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, ErrMsgZeroAdjustment)
	case delta > 0:
		balance, err = s.credit(ctx, userID, delta, metrics.SourceAdmin)
	default:
		balance, err = s.debit(ctx, userID, -delta, metrics.SourceAdmin)
	}
	if err != nil {
		return balance, err
	}
	logger.FromContext(ctx).Info(LogMsgBalanceAdjusted, "user_id", userID, "delta", delta, "balance", balance)
	return balance, nil
}

// GrantForMessage credits round(length/10) crowns, rounding half to even,
// and returns the amount granted. The account is created even when the
// message is too short to earn anything.
func (s *service) GrantForMessage(ctx context.Context, userID string, messageLength int) (int64, error) {
	if messageLength < 0 {
		return 0, fmt.Errorf(ErrMsgNegativeMessageLenFmt, messageLength, domain.ErrInvalidAmount)
	}
	grant := utils.RoundDiv(messageLength, MessageGrantDivisor)
	if grant == 0 {
		return 0, s.EnsureAccount(ctx, userID)
	}

	balance, err := s.credit(ctx, userID, grant, metrics.SourceMessage)
	if err != nil {
		return 0, err
	}
	metrics.MessagesRewarded.Inc()
	logger.FromContext(ctx).Debug(LogMsgMessageGrant, "user_id", userID, "length", messageLength, "grant", grant, "balance", balance)
	return grant, nil
}

func recordDelta(amount int64, source string) {
	if amount > 0 {
		metrics.CrownsCredited.WithLabelValues(source).Add(float64(amount))
	} else if amount < 0 {
		metrics.CrownsDebited.WithLabelValues(source).Add(float64(-amount))
	}
}

func transferResultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrStore):
		return metrics.ResultFailed
	default:
		return metrics.ResultRejected
	}
}
