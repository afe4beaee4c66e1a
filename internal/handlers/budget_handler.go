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

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgets   services.BudgetServiceInterface
	validator *validation.Validator
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgets services.BudgetServiceInterface, validator *validation.Validator) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, validator: validator}
}

// ListBudgets returns all budgets
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	budgets, err := h.budgets.GetBudgets()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: budgets})
}

// ListBudgetProgress returns every budget evaluated against current spending
func (h *BudgetHandler) ListBudgetProgress(c echo.Context) error {
	progress, err := h.budgets.ListProgress()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: progress})
}

// CreateBudget sets a spending cap for a category
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.BudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if fieldErrors := h.validator.Validate(req); len(fieldErrors) > 0 {
		return SendValidationError(c, fieldErrors)
	}

	budget, err := h.budgets.CreateBudget(services.BudgetInput(req))
	if err != nil {
		return h.sendBudgetError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: budget})
}

// UpdateBudget replaces a budget's category, cap, and period
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	var req dto.BudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if fieldErrors := h.validator.Validate(req); len(fieldErrors) > 0 {
		return SendValidationError(c, fieldErrors)
	}

	budget, err := h.budgets.UpdateBudget(id, services.BudgetInput(req))
	if err != nil {
		return h.sendBudgetError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: budget})
}

// DeleteBudget removes a budget
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgets.DeleteBudget(id); err != nil {
		return h.sendBudgetError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget deleted"})
}

func (h *BudgetHandler) sendBudgetError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrBudgetNotFound):
		return SendError(c, errors.BudgetNotFound)
	case stderrors.Is(err, models.ErrNonPositiveBudget):
		return SendError(c, errors.BudgetInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidBudgetPeriod):
		return SendError(c, errors.BudgetInvalidPeriod)
	case stderrors.Is(err, models.ErrMissingBudgetCategory):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category is required"))
	case stderrors.Is(err, services.ErrUnknownCategory):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrCategoryNotEligible):
		return SendError(c, errors.CategoryInvalidType, errors.WithDetails("Budgets require an expense-eligible category"))
	default:
		return SendSystemError(c, err)
	}
}
