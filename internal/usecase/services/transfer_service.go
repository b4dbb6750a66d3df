package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/api-sage/money-transfer-service/internal/domain"
	"github.com/api-sage/money-transfer-service/internal/logger"
)

type TransferService struct {
	accountStore domain.TransactionalAccountStore
}

func NewTransferService(accountStore domain.TransactionalAccountStore) *TransferService {
	return &TransferService{accountStore: accountStore}
}

// Transfer moves the requested amount from the source account to the target
// account. Validation order is fixed: source existence, then funds, then
// target existence. No balance is written until every check has passed, and
// both writes share one store transaction so a failed credit rolls back the
// debit. The engine performs no retries; every store failure propagates.
func (s *TransferService) Transfer(ctx context.Context, transfer domain.MoneyTransfer) (domain.TransferResult, error) {
	logger.Info("transfer service transfer request", logger.Fields{
		"sourceAccountId": transfer.SourceAccount,
		"targetAccountId": transfer.TargetAccount,
		"currency":        transfer.Currency,
		"amount":          transfer.Amount.String(),
	})

	var result domain.TransferResult

	err := s.accountStore.WithinTx(ctx, func(store domain.AccountStore) error {
		source, err := store.GetByAccountID(ctx, transfer.SourceAccount)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("source account with id: %s, doesn't exist: %w", transfer.SourceAccount, domain.ErrRecordNotFound)
			}
			return err
		}

		if source.Balance.LessThan(transfer.Amount) {
			return fmt.Errorf("insufficient funds at source account with id: %s: %w", transfer.SourceAccount, domain.ErrInsufficientFunds)
		}

		target, err := store.GetByAccountID(ctx, transfer.TargetAccount)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("target account with id: %s, doesn't exist: %w", transfer.TargetAccount, domain.ErrRecordNotFound)
			}
			return err
		}

		newSourceBalance := source.Balance.Sub(transfer.Amount)
		newTargetBalance := target.Balance.Add(transfer.Amount)

		if _, err := store.UpdateBalance(ctx, source.AccountID, newSourceBalance); err != nil {
			return err
		}
		logger.Info("transfer service source account debited", logger.Fields{
			"sourceAccountId": source.AccountID,
			"amount":          transfer.Amount.String(),
		})

		affected, err := store.UpdateBalance(ctx, target.AccountID, newTargetBalance)
		if err != nil {
			return err
		}
		logger.Info("transfer service target account credited", logger.Fields{
			"targetAccountId": target.AccountID,
			"amount":          transfer.Amount.String(),
		})

		result = domain.TransferResult{RowsAffected: affected}
		return nil
	})
	if err != nil {
		return domain.TransferResult{}, err
	}

	logger.Info("transfer service transfer completed", logger.Fields{
		"sourceAccountId": transfer.SourceAccount,
		"targetAccountId": transfer.TargetAccount,
	})

	return result, nil
}
