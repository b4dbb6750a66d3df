package models

import (
	"github.com/shopspring/decimal"

	"github.com/api-sage/money-transfer-service/internal/domain"
)

type AccountResponse struct {
	AccountID string          `json:"accountId"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
}

func AccountToResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: account.AccountID,
		Currency:  account.Currency,
		Balance:   account.Balance,
	}
}
