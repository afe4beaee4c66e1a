// Package dto defines the HTTP request payloads.
package dto

import "time"

// CreateTransactionRequest is the payload for POST /transactions
type CreateTransactionRequest struct {
	Amount      float64    `json:"amount" validate:"gte=0"`
	Type        string     `json:"type" validate:"required,transaction_type"`
	Category    string     `json:"category" validate:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

// UpdateTransactionRequest is the payload for PUT /transactions/:id.
// Every field is optional; absent fields keep their stored value.
type UpdateTransactionRequest struct {
	Amount      *float64   `json:"amount" validate:"omitempty,gte=0"`
	Type        *string    `json:"type" validate:"omitempty,transaction_type"`
	Category    *string    `json:"category" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

// BudgetRequest is the payload for POST /budgets and PUT /budgets/:id
type BudgetRequest struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	Period   string  `json:"period" validate:"required,budget_period"`
}

// CreateCategoryRequest is the payload for POST /categories
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type" validate:"required,category_type"`
}

// UpdateSettingsRequest is the payload for PUT /settings. Absent fields
// are left unchanged.
type UpdateSettingsRequest struct {
	Currency     *string `json:"currency"`
	NumberFormat *string `json:"numberFormat" validate:"omitempty,number_format"`
	Theme        *string `json:"theme"`
}
