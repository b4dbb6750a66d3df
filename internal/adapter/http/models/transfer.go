package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/money-transfer-service/internal/domain"
)

type MoneyTransferRequest struct {
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	SourceAccount string          `json:"sourceAccount"`
	TargetAccount string          `json:"targetAccount"`
}

func (r MoneyTransferRequest) Validate() error {
	var errs []string

	currency := strings.TrimSpace(r.Currency)
	if currency == "" {
		errs = append(errs, "currency is required")
	} else if len(currency) != 3 || !lettersOnly(currency) {
		errs = append(errs, "currency must be a 3 letter ISO code")
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if msg, ok := validateAccountID(r.SourceAccount, "sourceAccount"); !ok {
		errs = append(errs, msg)
	}
	if msg, ok := validateAccountID(r.TargetAccount, "targetAccount"); !ok {
		errs = append(errs, msg)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r MoneyTransferRequest) ToDomain() domain.MoneyTransfer {
	return domain.MoneyTransfer{
		Currency:      strings.ToUpper(strings.TrimSpace(r.Currency)),
		Amount:        r.Amount,
		SourceAccount: strings.TrimSpace(r.SourceAccount),
		TargetAccount: strings.TrimSpace(r.TargetAccount),
	}
}

type TransferResult struct {
	RowsAffected int64 `json:"rowsAffected"`
}

// ValidateAccountID covers the path parameter of the account details route.
func ValidateAccountID(accountID string) error {
	if msg, ok := validateAccountID(accountID, "accountId"); !ok {
		return errors.New(msg)
	}
	return nil
}

func validateAccountID(value string, field string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return field + " is required", false
	}
	if len(trimmed) > 100 {
		return field + " must be at most 100 characters", false
	}
	if !alphanumericOnly(trimmed) {
		return field + " must be alphanumeric", false
	}
	return "", true
}

func lettersOnly(value string) bool {
	for _, ch := range value {
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}

func alphanumericOnly(value string) bool {
	for _, ch := range value {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			return false
		}
	}
	return true
}
