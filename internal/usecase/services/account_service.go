package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/api-sage/money-transfer-service/internal/domain"
	"github.com/api-sage/money-transfer-service/internal/logger"
)

type AccountService struct {
	accountStore domain.AccountStore
}

func NewAccountService(accountStore domain.AccountStore) *AccountService {
	return &AccountService{accountStore: accountStore}
}

// GetAccountDetails is a pure read; it never mutates the store.
func (s *AccountService) GetAccountDetails(ctx context.Context, accountID string) (domain.Account, error) {
	logger.Info("account service get details", logger.Fields{
		"accountId": accountID,
	})

	account, err := s.accountStore.GetByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Account{}, fmt.Errorf("account with id: %s, doesn't exist: %w", accountID, domain.ErrRecordNotFound)
		}
		return domain.Account{}, err
	}

	return account, nil
}
