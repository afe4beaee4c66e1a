package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"
	BudgetPeriodYearly  = "yearly"
)

// Budget progress status tiers. Warning starts at 80% of the cap.
const (
	BudgetStatusOK      = "ok"
	BudgetStatusWarning = "warning"
	BudgetStatusOver    = "over"

	BudgetWarningThreshold = 80.0
)

var (
	ErrInvalidBudgetPeriod   = errors.New("invalid budget period")
	ErrNonPositiveBudget     = errors.New("budget amount must be positive")
	ErrMissingBudgetCategory = errors.New("budget category is required")
)

// Budget caps spending for one category. Period is an informational grouping
// label; progress is always evaluated against the current calendar month's
// category breakdown.
type Budget struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Category  string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Period    string    `gorm:"type:varchar(10);not null" json:"period"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Category == "" {
		return ErrMissingBudgetCategory
	}
	if b.Amount <= 0 {
		return ErrNonPositiveBudget
	}
	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}
	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// IsValidBudgetPeriod checks if the budget period is valid
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	default:
		return false
	}
}

// BudgetProgress is the derived spent/cap view for a single budget. It is
// never persisted. Percentage is clamped to [0, 100] for progress bars;
// Overage carries the unclamped excess for over-budget messaging.
type BudgetProgress struct {
	Budget     Budget  `json:"budget"`
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
	Overage    float64 `json:"overage"`
	Status     string  `json:"status"`
}
