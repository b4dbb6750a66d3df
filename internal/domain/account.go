package domain

import "github.com/shopspring/decimal"

// Account is an identifiable holder of a single-currency balance. Accounts
// are provisioned by schema seed and never deleted by this service; the
// balance is only mutated through the transfer engine.
type Account struct {
	AccountID string
	Currency  string
	Balance   decimal.Decimal
}
