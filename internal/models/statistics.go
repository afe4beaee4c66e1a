package models

import "time"

// Statistics is the derived projection of all transactions into summary
// numbers. It has no lifecycle of its own: it is recomputed in full from the
// store on every observed change and never patched incrementally.
type Statistics struct {
	// Balance is the lifetime sum of income minus expense, across all time.
	Balance float64 `json:"balance"`
	// MonthlyIncome and MonthlyExpenses cover the calendar month containing
	// the computation instant.
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	// ExpenseChange is the percentage delta of current-month expenses against
	// the previous calendar month, 0 when the previous month had none.
	ExpenseChange float64 `json:"expenseChange"`
	// SavingsRate is (income - expenses) / income * 100 for the current
	// month, 0 when there is no income. It may be negative.
	SavingsRate float64 `json:"savingsRate"`
	// CategoryBreakdown maps category name to summed expense amount for the
	// current month. Absent key means zero; zero values are never stored.
	CategoryBreakdown map[string]float64 `json:"categoryBreakdown"`
	// MonthlyTrends holds one entry per month of the trailing window, oldest
	// first, zero-filled for months without transactions.
	MonthlyTrends []MonthlyTrend `json:"monthlyTrends"`
}

// MonthlyTrend is one point of the trend series.
type MonthlyTrend struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// LedgerSnapshot pairs the ordered transaction list with the statistics
// derived from it at a single instant.
type LedgerSnapshot struct {
	Transactions []Transaction `json:"transactions"`
	Stats        Statistics    `json:"stats"`
	ComputedAt   time.Time     `json:"computedAt"`
}
