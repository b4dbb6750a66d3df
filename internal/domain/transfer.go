package domain

import "github.com/shopspring/decimal"

// MoneyTransfer is a request to move a fixed amount from the source account
// to the target account. It is transient, built per call and never persisted.
type MoneyTransfer struct {
	Currency      string
	Amount        decimal.Decimal
	SourceAccount string
	TargetAccount string
}

// TransferResult carries the affected-row count of the final balance update.
// It is a completion signal, not a ledger entry.
type TransferResult struct {
	RowsAffected int64
}
