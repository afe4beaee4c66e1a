package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category types constrain which categories are offered for a transaction
// type. A "both" category is eligible for income and expense alike.
const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
	CategoryTypeBoth    = "both"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrMissingCategoryName = errors.New("category name is required")
)

// Category is a user-visible grouping for transactions. Name is the join key
// used by Transaction.Category; Icon and Color are presentation hints only.
type Category struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Icon  string    `gorm:"type:varchar(50)" json:"icon"`
	Color string    `gorm:"type:varchar(20)" json:"color"`
	Type  string    `gorm:"type:varchar(10);not null" json:"type"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrMissingCategoryName
	}
	if !IsValidCategoryType(c.Type) {
		return ErrInvalidCategoryType
	}
	return nil
}

// EligibleFor reports whether the category may be attached to a transaction
// of the given type.
func (c *Category) EligibleFor(transactionType string) bool {
	return c.Type == CategoryTypeBoth || c.Type == transactionType
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryType checks if the category type is valid
func IsValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeBoth:
		return true
	default:
		return false
	}
}

// DefaultCategories returns the fixed set seeded on first run when the
// categories table is empty. Seeding never overwrites existing data.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salary", Icon: "Banknote", Color: "#10b981", Type: CategoryTypeIncome},
		{Name: "Freelance", Icon: "Laptop", Color: "#22d3ee", Type: CategoryTypeIncome},
		{Name: "Investments", Icon: "TrendingUp", Color: "#8b5cf6", Type: CategoryTypeIncome},
		{Name: "Food & Dining", Icon: "Utensils", Color: "#f59e0b", Type: CategoryTypeExpense},
		{Name: "Transportation", Icon: "Car", Color: "#3b82f6", Type: CategoryTypeExpense},
		{Name: "Shopping", Icon: "ShoppingBag", Color: "#ec4899", Type: CategoryTypeExpense},
		{Name: "Entertainment", Icon: "Gamepad2", Color: "#8b5cf6", Type: CategoryTypeExpense},
		{Name: "Bills & Utilities", Icon: "Receipt", Color: "#ef4444", Type: CategoryTypeExpense},
		{Name: "Healthcare", Icon: "Heart", Color: "#14b8a6", Type: CategoryTypeExpense},
		{Name: "Education", Icon: "GraduationCap", Color: "#6366f1", Type: CategoryTypeExpense},
		{Name: "Travel", Icon: "Plane", Color: "#0ea5e9", Type: CategoryTypeExpense},
		{Name: "Subscriptions", Icon: "CreditCard", Color: "#a855f7", Type: CategoryTypeExpense},
	}
}
