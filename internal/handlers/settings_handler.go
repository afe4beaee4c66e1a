package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/md8-habibullah/ledger-tracker/internal/dto"
	"github.com/md8-habibullah/ledger-tracker/internal/errors"
	"github.com/md8-habibullah/ledger-tracker/internal/format"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
	"github.com/md8-habibullah/ledger-tracker/internal/validation"
)

// SettingsHandler handles preference and catalog endpoints
type SettingsHandler struct {
	preferences services.PreferenceServiceInterface
	validator   *validation.Validator
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(preferences services.PreferenceServiceInterface, validator *validation.Validator) *SettingsHandler {
	return &SettingsHandler{preferences: preferences, validator: validator}
}

// GetSettings returns the resolved preferences with defaults applied
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	prefs, err := h.preferences.GetPreferences()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: prefs})
}

// UpdateSettings writes the preference keys present in the payload
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if fieldErrors := h.validator.Validate(req); len(fieldErrors) > 0 {
		return SendValidationError(c, fieldErrors)
	}
	if req.Currency == nil && req.NumberFormat == nil && req.Theme == nil {
		return SendError(c, errors.SettingsUnknownKey, errors.WithDetails("No known settings in payload"))
	}

	if req.Currency != nil {
		if err := h.preferences.SetCurrency(*req.Currency); err != nil {
			return h.sendSettingsError(c, err)
		}
	}
	if req.NumberFormat != nil {
		if err := h.preferences.SetNumberFormat(*req.NumberFormat); err != nil {
			return h.sendSettingsError(c, err)
		}
	}
	if req.Theme != nil {
		if err := h.preferences.SetTheme(*req.Theme); err != nil {
			return h.sendSettingsError(c, err)
		}
	}

	prefs, err := h.preferences.GetPreferences()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: prefs, Message: "Settings updated"})
}

// ListCurrencies returns the supported currency catalog
func (h *SettingsHandler) ListCurrencies(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: format.Currencies()})
}

// ListThemes returns the selectable theme identifiers
func (h *SettingsHandler) ListThemes(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: models.ThemeIDs()})
}

func (h *SettingsHandler) sendSettingsError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, format.ErrUnknownCurrency):
		return SendError(c, errors.SettingsUnknownCurrency)
	case stderrors.Is(err, models.ErrInvalidNumberFormat), stderrors.Is(err, models.ErrUnknownTheme):
		return SendError(c, errors.SettingsInvalidValue, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrUnknownPreferenceKey):
		return SendError(c, errors.SettingsUnknownKey)
	default:
		return SendSystemError(c, err)
	}
}
