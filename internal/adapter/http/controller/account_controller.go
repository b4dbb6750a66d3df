package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/money-transfer-service/internal/adapter/http/models"
	"github.com/api-sage/money-transfer-service/internal/domain"
	"github.com/api-sage/money-transfer-service/internal/logger"
)

// Sanitized client-facing messages per error class. Detailed messages go to
// the operational log only.
const (
	messageNotFound        = "Not found"
	messageApplicationErr  = "Application error while trying to access to the provided operation"
	messageValidationErr   = "Error while validating input parameters"
	messageInternalErr     = "Generic error while trying to access to the provided operation"
	messageTransferSuccess = "transfer completed successfully"
	messageAccountFetched  = "account fetched successfully"
)

type TransferService interface {
	Transfer(ctx context.Context, transfer domain.MoneyTransfer) (domain.TransferResult, error)
}

type AccountQueryService interface {
	GetAccountDetails(ctx context.Context, accountID string) (domain.Account, error)
}

type AccountController struct {
	transferService TransferService
	accountService  AccountQueryService
}

func NewAccountController(transferService TransferService, accountService AccountQueryService) *AccountController {
	return &AccountController{
		transferService: transferService,
		accountService:  accountService,
	}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /account/transfer", c.transfer)
	mux.HandleFunc("GET /account/{id}", c.getAccountDetails)
}

func (c *AccountController) transfer(w http.ResponseWriter, r *http.Request) {
	var req models.MoneyTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.TransferResult](messageValidationErr))
		return
	}

	if err := req.Validate(); err != nil {
		logError(r, err, logger.Fields{"payload": logger.SanitizePayload(req)})
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.TransferResult](messageValidationErr))
		return
	}

	result, err := c.transferService.Transfer(r.Context(), req.ToDomain())
	if err != nil {
		status, message := statusForError(err)
		logError(r, err, logger.Fields{
			"sourceAccountId": req.SourceAccount,
			"targetAccountId": req.TargetAccount,
			"status":          status,
		})
		writeJSON(w, status, models.ErrorResponse[models.TransferResult](message))
		return
	}

	response := models.TransferResult{RowsAffected: result.RowsAffected}
	writeJSON(w, http.StatusOK, models.SuccessResponse(messageTransferSuccess, response))
}

func (c *AccountController) getAccountDetails(w http.ResponseWriter, r *http.Request) {
	accountID := r.PathValue("id")
	if err := models.ValidateAccountID(accountID); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse[models.AccountResponse](messageValidationErr))
		return
	}

	account, err := c.accountService.GetAccountDetails(r.Context(), accountID)
	if err != nil {
		status, message := statusForError(err)
		logError(r, err, logger.Fields{
			"accountId": accountID,
			"status":    status,
		})
		writeJSON(w, status, models.ErrorResponse[models.AccountResponse](message))
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse(messageAccountFetched, models.AccountToResponse(account)))
}

// statusForError keeps the error taxonomy distinct internally even though
// insufficient funds and validation failures share the 400 class.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, messageNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, messageApplicationErr
	default:
		return http.StatusInternalServerError, messageInternalErr
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}
