package models

import (
	"errors"
	"time"
)

// Preference keys persisted outside the three ledger tables. Each holds a
// single scalar read at startup and written on change.
const (
	PreferenceCurrency     = "currency"
	PreferenceNumberFormat = "number_format"
	PreferenceTheme        = "theme"
)

// Number format modes for amount rendering.
const (
	NumberFormatInternational = "international"
	NumberFormatLocal         = "local"
)

var (
	ErrUnknownPreferenceKey = errors.New("unknown preference key")
	ErrInvalidNumberFormat  = errors.New("invalid number format mode")
	ErrUnknownTheme         = errors.New("unknown theme identifier")
)

// Preference is a single key-value application setting.
type Preference struct {
	Key       string    `gorm:"type:varchar(50);primary_key" json:"key"`
	Value     string    `gorm:"type:varchar(100);not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName returns the table name for Preference
func (p *Preference) TableName() string {
	return "preferences"
}

// ThemeIDs lists the selectable theme identifiers.
func ThemeIDs() []string {
	return []string{"dark", "light", "ocean", "forest", "sunset"}
}

// IsValidTheme checks if the theme identifier is known
func IsValidTheme(id string) bool {
	for _, t := range ThemeIDs() {
		if t == id {
			return true
		}
	}
	return false
}

// IsValidNumberFormat checks if the number format mode is valid
func IsValidNumberFormat(mode string) bool {
	return mode == NumberFormatInternational || mode == NumberFormatLocal
}
