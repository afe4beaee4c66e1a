package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/md8-habibullah/ledger-tracker/internal/dto"
	"github.com/md8-habibullah/ledger-tracker/internal/errors"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
	"github.com/md8-habibullah/ledger-tracker/internal/validation"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledger    services.LedgerServiceInterface
	validator *validation.Validator
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledger services.LedgerServiceInterface, validator *validation.Validator) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, validator: validator}
}

// ListTransactions returns the current transaction list, newest first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	snapshot := h.ledger.Snapshot()
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: snapshot.Transactions,
		Meta: map[string]interface{}{
			"count":      len(snapshot.Transactions),
			"computedAt": snapshot.ComputedAt,
		},
	})
}

// CreateTransaction records a new income or expense entry
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if fieldErrors := h.validator.Validate(req); len(fieldErrors) > 0 {
		return SendValidationError(c, fieldErrors)
	}

	input := services.AddTransactionInput{
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	transaction, err := h.ledger.AddTransaction(input)
	if err != nil {
		return h.sendTransactionError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: transaction})
}

// UpdateTransaction applies a partial update to an existing entry
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if fieldErrors := h.validator.Validate(req); len(fieldErrors) > 0 {
		return SendValidationError(c, fieldErrors)
	}

	transaction, err := h.ledger.UpdateTransaction(id, services.UpdateTransactionInput{
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return h.sendTransactionError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: transaction})
}

// DeleteTransaction removes an entry
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.ledger.DeleteTransaction(id); err != nil {
		return h.sendTransactionError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction deleted"})
}

func (h *TransactionHandler) sendTransactionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, models.ErrNegativeAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, models.ErrMissingCategory):
		return SendError(c, errors.TransactionMissingCategory)
	case stderrors.Is(err, services.ErrUnknownCategory):
		return SendError(c, errors.TransactionUnknownCategory)
	case stderrors.Is(err, services.ErrCategoryNotEligible):
		return SendError(c, errors.TransactionCategoryMismatch)
	default:
		return SendSystemError(c, err)
	}
}
