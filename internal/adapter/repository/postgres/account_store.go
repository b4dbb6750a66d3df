package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/money-transfer-service/internal/domain"
	"github.com/api-sage/money-transfer-service/internal/logger"
)

const getAccountQuery = `
SELECT account_id, currency, balance
FROM accounts
WHERE account_id = $1`

// Row lock held until the surrounding transaction commits, so the
// read-then-write pair of a transfer cannot lose an update.
const getAccountForUpdateQuery = getAccountQuery + `
FOR UPDATE`

const updateBalanceQuery = `
UPDATE accounts
SET balance = $2,
    updated_at = NOW()
WHERE account_id = $1`

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) GetByAccountID(ctx context.Context, accountID string) (domain.Account, error) {
	return getByAccountID(ctx, s.db, getAccountQuery, accountID)
}

func (s *AccountStore) UpdateBalance(ctx context.Context, accountID string, balance decimal.Decimal) (int64, error) {
	return updateBalance(ctx, s.db, accountID, balance)
}

// WithinTx runs fn against a transaction-scoped store. Point lookups made
// through that store take row locks, and every balance write commits or
// rolls back as one unit.
func (s *AccountStore) WithinTx(ctx context.Context, fn func(store domain.AccountStore) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin account store tx: %w", err)
	}

	if err := fn(&txAccountStore{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Error("account store tx rollback failed", rbErr, nil)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit account store tx: %w", err)
	}

	return nil
}

type txAccountStore struct {
	tx *sql.Tx
}

func (s *txAccountStore) GetByAccountID(ctx context.Context, accountID string) (domain.Account, error) {
	return getByAccountID(ctx, s.tx, getAccountForUpdateQuery, accountID)
}

func (s *txAccountStore) UpdateBalance(ctx context.Context, accountID string, balance decimal.Decimal) (int64, error) {
	return updateBalance(ctx, s.tx, accountID, balance)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getByAccountID(ctx context.Context, q querier, query string, accountID string) (domain.Account, error) {
	var account domain.Account
	var balance string

	if err := q.QueryRowContext(ctx, query, accountID).Scan(
		&account.AccountID,
		&account.Currency,
		&balance,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("account store record not found", logger.Fields{
				"accountId": accountID,
			})
			return domain.Account{}, domain.ErrRecordNotFound
		}
		logger.Error("account store get failed", err, logger.Fields{
			"accountId": accountID,
		})
		return domain.Account{}, fmt.Errorf("get account by account id: %w", err)
	}

	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		logger.Error("account store balance parse failed", err, logger.Fields{
			"accountId": accountID,
		})
		return domain.Account{}, fmt.Errorf("parse stored balance for account %s: %w", accountID, err)
	}
	account.Balance = parsed

	return account, nil
}

func updateBalance(ctx context.Context, q querier, accountID string, balance decimal.Decimal) (int64, error) {
	result, err := q.ExecContext(ctx, updateBalanceQuery, accountID, balance.String())
	if err != nil {
		logger.Error("account store update balance failed", err, logger.Fields{
			"accountId": accountID,
		})
		return 0, fmt.Errorf("update balance for account %s: %w", accountID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("account store update balance rows affected failed", err, logger.Fields{
			"accountId": accountID,
		})
		return 0, fmt.Errorf("update balance rows affected for account %s: %w", accountID, err)
	}

	return rowsAffected, nil
}
