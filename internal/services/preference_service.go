package services

import (
	"fmt"
	"log/slog"

	"github.com/md8-habibullah/ledger-tracker/internal/format"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

// Preferences is the resolved settings view, with defaults filled in for
// keys never written.
type Preferences struct {
	Currency     string `json:"currency"`
	NumberFormat string `json:"numberFormat"`
	Theme        string `json:"theme"`
}

// DefaultPreferences returns the settings a fresh install starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Currency:     format.DefaultCurrency().Code,
		NumberFormat: models.NumberFormatInternational,
		Theme:        "dark",
	}
}

type preferenceService struct {
	preferenceRepo repositories.PreferenceRepositoryInterface
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(preferenceRepo repositories.PreferenceRepositoryInterface) PreferenceServiceInterface {
	return &preferenceService{preferenceRepo: preferenceRepo}
}

func (s *preferenceService) GetPreferences() (Preferences, error) {
	prefs := DefaultPreferences()

	stored, err := s.preferenceRepo.GetAll()
	if err != nil {
		return prefs, fmt.Errorf("failed to load preferences: %w", err)
	}

	// Stored values are validated on write, but re-check on read so a
	// hand-edited database falls back to defaults instead of propagating
	// garbage.
	if v, ok := stored[models.PreferenceCurrency]; ok && format.IsValidCurrency(v) {
		prefs.Currency = v
	}
	if v, ok := stored[models.PreferenceNumberFormat]; ok && models.IsValidNumberFormat(v) {
		prefs.NumberFormat = v
	}
	if v, ok := stored[models.PreferenceTheme]; ok && models.IsValidTheme(v) {
		prefs.Theme = v
	}
	return prefs, nil
}

func (s *preferenceService) SetCurrency(code string) error {
	if !format.IsValidCurrency(code) {
		return format.ErrUnknownCurrency
	}
	if err := s.preferenceRepo.Set(models.PreferenceCurrency, code); err != nil {
		return fmt.Errorf("failed to save currency: %w", err)
	}
	slog.Info("Preference updated", "key", models.PreferenceCurrency, "value", code)
	return nil
}

func (s *preferenceService) SetNumberFormat(mode string) error {
	if !models.IsValidNumberFormat(mode) {
		return models.ErrInvalidNumberFormat
	}
	if err := s.preferenceRepo.Set(models.PreferenceNumberFormat, mode); err != nil {
		return fmt.Errorf("failed to save number format: %w", err)
	}
	slog.Info("Preference updated", "key", models.PreferenceNumberFormat, "value", mode)
	return nil
}

func (s *preferenceService) SetTheme(id string) error {
	if !models.IsValidTheme(id) {
		return models.ErrUnknownTheme
	}
	if err := s.preferenceRepo.Set(models.PreferenceTheme, id); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	slog.Info("Preference updated", "key", models.PreferenceTheme, "value", id)
	return nil
}
