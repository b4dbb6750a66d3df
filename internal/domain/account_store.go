package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountStore is the durable mapping of account id to balance record.
type AccountStore interface {
	// GetByAccountID returns the account or ErrRecordNotFound.
	GetByAccountID(ctx context.Context, accountID string) (Account, error)

	// UpdateBalance overwrites the balance column unconditionally and
	// returns the number of rows affected. 0 means the account no longer
	// exists.
	UpdateBalance(ctx context.Context, accountID string, balance decimal.Decimal) (int64, error)
}

// TransactionalAccountStore additionally scopes a sequence of store calls to
// one atomic commit. An error returned from fn rolls back every write made
// through the store passed to it.
type TransactionalAccountStore interface {
	AccountStore

	WithinTx(ctx context.Context, fn func(store AccountStore) error) error
}
