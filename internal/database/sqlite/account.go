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
	queryEnsureAccount = `INSERT INTO accounts (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`

	queryGetAccount = `SELECT user_id, balance, inventory, characters FROM accounts WHERE user_id = ?`

	queryListAccounts = `SELECT user_id, balance, inventory, characters FROM accounts ORDER BY rowid`

	// rowid is insertion order, which makes ties stable
	queryLeaderboard = `SELECT user_id, balance FROM accounts ORDER BY balance DESC, rowid ASC LIMIT ?`

	queryUpdateBalance    = `UPDATE accounts SET balance = ? WHERE user_id = ?`
	queryUpdateInventory  = `UPDATE accounts SET inventory = ? WHERE user_id = ?`
	queryUpdateCharacters = `UPDATE accounts SET characters = ? WHERE user_id = ?`

	queryReplaceAccount = `
		INSERT INTO accounts (user_id, balance, inventory, characters) VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			balance = excluded.balance,
			inventory = excluded.inventory,
			characters = excluded.characters`
)

// accountQueries runs account statements against either the pool or a transaction
type accountQueries struct {
	db sqlx.ExtContext
}

func (q accountQueries) ensureAccount(ctx context.Context, userID string) (bool, error) {
	res, err := q.db.ExecContext(ctx, queryEnsureAccount, userID)
	if err != nil {
		return false, storeErr(opEnsureAccount, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr(opEnsureAccount, err)
	}
	return n > 0, nil
}

func (q accountQueries) getAccount(ctx context.Context, userID string) (*domain.Account, error) {
	var row accountRow
	if err := sqlx.GetContext(ctx, q.db, &row, queryGetAccount, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, storeErr(opGetAccount, err)
	}
	return row.toDomain()
}

func (q accountQueries) exec(ctx context.Context, op, query string, args ...interface{}) error {
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storeErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr(op, err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// AccountRepository implements repository.Account for SQLite
type AccountRepository struct {
	db *sqlx.DB
	q  accountQueries
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
		q:  accountQueries{db: db},
	}
}

// AccountTx implements repository.AccountTx
type AccountTx struct {
	tx *sqlx.Tx
	q  accountQueries
}

// BeginTx starts a new write transaction
func (r *AccountRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storeErr(opBeginTx, err)
	}
	return &AccountTx{
		tx: tx,
		q:  accountQueries{db: tx},
	}, nil
}

// EnsureAccount inserts a zero-balance account if absent
func (r *AccountRepository) EnsureAccount(ctx context.Context, userID string) (bool, error) {
	return r.q.ensureAccount(ctx, userID)
}

// GetAccount returns the account or domain.ErrAccountNotFound
func (r *AccountRepository) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	return r.q.getAccount(ctx, userID)
}

// GetLeaderboard returns the top accounts by balance, ranked from 1
func (r *AccountRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	if err := sqlx.SelectContext(ctx, r.db, &entries, queryLeaderboard, limit); err != nil {
		return nil, storeErr(opLeaderboard, err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// ListAccounts returns every account in insertion order
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var rows []accountRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, queryListAccounts); err != nil {
		return nil, storeErr(opListAccounts, err)
	}
	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		acct, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acct)
	}
	return accounts, nil
}

// Commit commits the transaction
func (t *AccountTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(); err != nil {
		return storeErr(opCommitTx, err)
	}
	return nil
}

// Rollback rolls back the transaction
func (t *AccountTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback()
}

// EnsureAccount inserts a zero-balance account if absent
func (t *AccountTx) EnsureAccount(ctx context.Context, userID string) (bool, error) {
	return t.q.ensureAccount(ctx, userID)
}

// GetAccount returns the account or domain.ErrAccountNotFound
func (t *AccountTx) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	return t.q.getAccount(ctx, userID)
}

// UpdateBalance stores a new balance
func (t *AccountTx) UpdateBalance(ctx context.Context, userID string, balance int64) error {
	return t.q.exec(ctx, opUpdateBalance, queryUpdateBalance, balance, userID)
}

// UpdateInventory rewrites the whole inventory column
func (t *AccountTx) UpdateInventory(ctx context.Context, userID string, inventory []domain.InventoryItem) error {
	raw, err := encodeList(inventory)
	if err != nil {
		return storeErr(opUpdateInventory, err)
	}
	return t.q.exec(ctx, opUpdateInventory, queryUpdateInventory, raw, userID)
}

// UpdateCharacters rewrites the whole characters column
func (t *AccountTx) UpdateCharacters(ctx context.Context, userID string, characters []domain.Character) error {
	raw, err := encodeList(characters)
	if err != nil {
		return storeErr(opUpdateCharacters, err)
	}
	return t.q.exec(ctx, opUpdateCharacters, queryUpdateCharacters, raw, userID)
}

// ReplaceAccount overwrites or inserts a whole account row
func (t *AccountTx) ReplaceAccount(ctx context.Context, account domain.Account) error {
	inv, err := encodeList(account.Inventory)
	if err != nil {
		return storeErr(opReplaceAccount, err)
	}
	chars, err := encodeList(account.Characters)
	if err != nil {
		return storeErr(opReplaceAccount, err)
	}
	if _, err := t.tx.ExecContext(ctx, queryReplaceAccount, account.UserID, account.Balance, inv, chars); err != nil {
		return storeErr(opReplaceAccount, err)
	}
	return nil
}

var (
	_ repository.Account   = (*AccountRepository)(nil)
	_ repository.AccountTx = (*AccountTx)(nil)
)
