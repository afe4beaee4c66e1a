package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/md8-habibullah/ledger-tracker/internal/dto"
	"github.com/md8-habibullah/ledger-tracker/internal/errors"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
	"github.com/md8-habibullah/ledger-tracker/internal/validation"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories services.CategoryServiceInterface
	validator  *validation.Validator
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories services.CategoryServiceInterface, validator *validation.Validator) *CategoryHandler {
	return &CategoryHandler{categories: categories, validator: validator}
}

// ListCategories returns all categories, optionally filtered by the
// transaction type they are eligible for (?type=income|expense)
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	var (
		categories []models.Category
		err        error
	)
	if transactionType := c.QueryParam("type"); transactionType != "" {
		categories, err = h.categories.GetCategoriesForType(transactionType)
	} else {
		categories, err = h.categories.GetCategories()
	}
	if err != nil {
		if stderrors.Is(err, models.ErrInvalidTransactionType) {
			return SendError(c, errors.TransactionInvalidType)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: categories})
}

// CreateCategory adds a user-defined category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if fieldErrors := h.validator.Validate(req); len(fieldErrors) > 0 {
		return SendValidationError(c, fieldErrors)
	}

	category := &models.Category{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
		Type:  req.Type,
	}
	if err := h.categories.CreateCategory(category); err != nil {
		switch {
		case stderrors.Is(err, models.ErrInvalidCategoryType):
			return SendError(c, errors.CategoryInvalidType)
		case stderrors.Is(err, models.ErrMissingCategoryName):
			return SendError(c, errors.ValidationRequiredField, errors.WithDetails("name is required"))
		case stderrors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err):
			return SendError(c, errors.CategoryAlreadyExists)
		default:
			return SendSystemError(c, err)
		}
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: category})
}

// DeleteCategory removes a category
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.categories.DeleteCategory(id); err != nil {
		if stderrors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category deleted"})
}

// isUniqueViolation catches the sqlite driver's unique constraint error,
// which gorm does not always translate.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
