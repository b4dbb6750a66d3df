package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/money-transfer-service/internal/adapter/http/models"
)

func validRequest() models.MoneyTransferRequest {
	return models.MoneyTransferRequest{
		Currency:      "EUR",
		Amount:        decimal.NewFromInt(1000),
		SourceAccount: "11aa23",
		TargetAccount: "11aa24",
	}
}

func TestMoneyTransferRequestValid(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

func TestMoneyTransferRequestValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.MoneyTransferRequest)
		wantErr string
	}{
		{
			name:    "missing currency",
			mutate:  func(r *models.MoneyTransferRequest) { r.Currency = "" },
			wantErr: "currency is required",
		},
		{
			name:    "non ISO currency",
			mutate:  func(r *models.MoneyTransferRequest) { r.Currency = "EU1" },
			wantErr: "currency must be a 3 letter ISO code",
		},
		{
			name:    "zero amount",
			mutate:  func(r *models.MoneyTransferRequest) { r.Amount = decimal.Zero },
			wantErr: "amount must be greater than zero",
		},
		{
			name:    "negative amount",
			mutate:  func(r *models.MoneyTransferRequest) { r.Amount = decimal.NewFromInt(-5) },
			wantErr: "amount must be greater than zero",
		},
		{
			name:    "blank source",
			mutate:  func(r *models.MoneyTransferRequest) { r.SourceAccount = "  " },
			wantErr: "sourceAccount is required",
		},
		{
			name:    "non alphanumeric target",
			mutate:  func(r *models.MoneyTransferRequest) { r.TargetAccount = "acc-2!" },
			wantErr: "targetAccount must be alphanumeric",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestMoneyTransferRequestToDomainNormalizes(t *testing.T) {
	req := models.MoneyTransferRequest{
		Currency:      " eur ",
		Amount:        decimal.NewFromInt(100),
		SourceAccount: " 1 ",
		TargetAccount: " 2 ",
	}

	transfer := req.ToDomain()

	assert.Equal(t, "EUR", transfer.Currency)
	assert.Equal(t, "1", transfer.SourceAccount)
	assert.Equal(t, "2", transfer.TargetAccount)
}

func TestValidateAccountID(t *testing.T) {
	assert.NoError(t, models.ValidateAccountID("11aa23"))
	assert.Error(t, models.ValidateAccountID(""))
	assert.Error(t, models.ValidateAccountID("has space"))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, models.ValidateAccountID(string(long)))
}
