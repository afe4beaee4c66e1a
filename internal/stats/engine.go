// Package stats derives summary statistics from a transaction set.
//
// Compute is a pure function of the full transaction list: no caching, no
// incremental patching of running totals. The reactive layer re-runs it from
// the authoritative record set on every observed change, which keeps derived
// numbers consistent by construction at O(n) per recomputation.
package stats

import (
	"time"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
)

// DefaultTrendMonths is the width of the trailing trend window.
const DefaultTrendMonths = 6

// Compute derives Statistics from the given transactions as of now. It is
// deterministic, independent of input order, and total: an empty input yields
// zeroed fields, an empty breakdown and a zero-filled trend series.
//
// Calendar windows are evaluated in now's location. trendMonths <= 0 falls
// back to DefaultTrendMonths.
func Compute(transactions []models.Transaction, now time.Time, trendMonths int) models.Statistics {
	if trendMonths <= 0 {
		trendMonths = DefaultTrendMonths
	}

	currentStart := monthStart(now)
	currentEnd := currentStart.AddDate(0, 1, 0)
	previousStart := currentStart.AddDate(0, -1, 0)
	trendStart := currentStart.AddDate(0, -(trendMonths - 1), 0)

	trends := make([]models.MonthlyTrend, trendMonths)
	for i := range trends {
		trends[i].Month = trendStart.AddDate(0, i, 0).Format("Jan 2006")
	}

	s := models.Statistics{
		CategoryBreakdown: make(map[string]float64),
		MonthlyTrends:     trends,
	}

	var previousExpenses float64

	for i := range transactions {
		t := &transactions[i]
		date := t.Date.In(now.Location())

		s.Balance += t.SignedAmount()

		if inWindow(date, currentStart, currentEnd) {
			if t.IsIncome() {
				s.MonthlyIncome += t.Amount
			} else {
				s.MonthlyExpenses += t.Amount
				s.CategoryBreakdown[t.Category] += t.Amount
			}
		}

		if inWindow(date, previousStart, currentStart) && t.IsExpense() {
			previousExpenses += t.Amount
		}

		if inWindow(date, trendStart, currentEnd) {
			idx := monthsBetween(trendStart, monthStart(date))
			if t.IsIncome() {
				trends[idx].Income += t.Amount
			} else {
				trends[idx].Expenses += t.Amount
			}
		}
	}

	// Absence means zero: zero-amount transactions must not leave an
	// explicit zero entry behind.
	for name, total := range s.CategoryBreakdown {
		if total == 0 {
			delete(s.CategoryBreakdown, name)
		}
	}

	if previousExpenses > 0 {
		s.ExpenseChange = (s.MonthlyExpenses - previousExpenses) / previousExpenses * 100
	}

	if s.MonthlyIncome > 0 {
		s.SavingsRate = (s.MonthlyIncome - s.MonthlyExpenses) / s.MonthlyIncome * 100
	}

	return s
}

// monthStart returns midnight on the first day of t's calendar month, in t's
// location.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// inWindow reports whether t falls in the half-open interval [start, end).
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// monthsBetween counts whole calendar months from a to b. Both arguments must
// be month starts with a <= b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
