package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/money-transfer-service/internal/domain"
	"github.com/api-sage/money-transfer-service/internal/usecase/services"
)

func TestGetAccountDetailsReturnsStoredRecord(t *testing.T) {
	stored := eur("11aa23", 2500)
	store := newMockAccountStore(stored)
	svc := services.NewAccountService(store)

	account, err := svc.GetAccountDetails(context.Background(), "11aa23")
	require.NoError(t, err)

	assert.Equal(t, stored.AccountID, account.AccountID)
	assert.Equal(t, stored.Currency, account.Currency)
	assert.True(t, stored.Balance.Equal(account.Balance))
	assert.Empty(t, store.updates)
}

func TestGetAccountDetailsMissingAccount(t *testing.T) {
	store := newMockAccountStore()
	svc := services.NewAccountService(store)

	_, err := svc.GetAccountDetails(context.Background(), "ghost")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "account with id: ghost")
}
