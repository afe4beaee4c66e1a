package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

type budgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	ledger       LedgerServiceInterface
	metrics      MetricsRecorderInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	ledger LedgerServiceInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		ledger:       ledger,
		metrics:      metrics,
	}
}

func (s *budgetService) CreateBudget(input BudgetInput) (*models.Budget, error) {
	budget := &models.Budget{
		Category: input.Category,
		Amount:   input.Amount,
		Period:   input.Period,
	}
	if err := budget.Validate(); err != nil {
		s.metrics.RecordMutation("budgets", "create", err)
		return nil, err
	}
	// Budgets cap spending, so the category must be expense-eligible.
	if err := s.checkCategory(budget.Category); err != nil {
		s.metrics.RecordMutation("budgets", "create", err)
		return nil, err
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		s.metrics.RecordMutation("budgets", "create", err)
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	s.metrics.RecordMutation("budgets", "create", nil)

	slog.Info("Budget created",
		"budget_id", budget.ID,
		"category", budget.Category,
		"amount", budget.Amount,
		"period", budget.Period)
	return budget, nil
}

func (s *budgetService) UpdateBudget(id uuid.UUID, input BudgetInput) (*models.Budget, error) {
	existing, err := s.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	merged.Category = input.Category
	merged.Amount = input.Amount
	merged.Period = input.Period
	if err := merged.Validate(); err != nil {
		s.metrics.RecordMutation("budgets", "update", err)
		return nil, err
	}
	if err := s.checkCategory(merged.Category); err != nil {
		s.metrics.RecordMutation("budgets", "update", err)
		return nil, err
	}

	updates := map[string]interface{}{
		"category": merged.Category,
		"amount":   merged.Amount,
		"period":   merged.Period,
	}
	if err := s.budgetRepo.Update(id, updates); err != nil {
		s.metrics.RecordMutation("budgets", "update", err)
		return nil, err
	}
	s.metrics.RecordMutation("budgets", "update", nil)

	slog.Info("Budget updated", "budget_id", id, "category", merged.Category)
	return &merged, nil
}

func (s *budgetService) DeleteBudget(id uuid.UUID) error {
	if err := s.budgetRepo.Delete(id); err != nil {
		s.metrics.RecordMutation("budgets", "delete", err)
		return err
	}
	s.metrics.RecordMutation("budgets", "delete", nil)

	slog.Info("Budget deleted", "budget_id", id)
	return nil
}

func (s *budgetService) GetBudgets() ([]models.Budget, error) {
	return s.budgetRepo.GetAll()
}

// Evaluate derives progress for one budget from a category spending
// breakdown. The percentage is clamped to 100 while the status tier uses
// the unclamped ratio, so exactly-at-cap reads as over.
func (s *budgetService) Evaluate(budget models.Budget, breakdown map[string]float64) models.BudgetProgress {
	spent := breakdown[budget.Category]

	progress := models.BudgetProgress{
		Budget: budget,
		Spent:  spent,
		Status: models.BudgetStatusOK,
	}

	if budget.Amount <= 0 {
		// A zero cap cannot be divided by; any spending is over it.
		progress.Percentage = 100
		progress.Overage = spent
		progress.Status = models.BudgetStatusOver
		return progress
	}

	ratio := spent / budget.Amount * 100
	progress.Percentage = ratio
	if progress.Percentage > 100 {
		progress.Percentage = 100
	}
	if remaining := budget.Amount - spent; remaining > 0 {
		progress.Remaining = remaining
	}
	if overage := spent - budget.Amount; overage > 0 {
		progress.Overage = overage
	}

	switch {
	case ratio >= 100:
		progress.Status = models.BudgetStatusOver
	case ratio >= models.BudgetWarningThreshold:
		progress.Status = models.BudgetStatusWarning
	}
	return progress
}

func (s *budgetService) ListProgress() ([]models.BudgetProgress, error) {
	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	breakdown := s.ledger.Snapshot().Stats.CategoryBreakdown
	progress := make([]models.BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		progress = append(progress, s.Evaluate(budget, breakdown))
	}
	return progress, nil
}

func (s *budgetService) checkCategory(name string) error {
	category, err := s.categoryRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrUnknownCategory
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if !category.EligibleFor(models.TransactionTypeExpense) {
		return ErrCategoryNotEligible
	}
	return nil
}
