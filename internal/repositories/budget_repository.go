package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB, notifier *Notifier) BudgetRepositoryInterface {
	return &budgetRepository{
		db:       db,
		notifier: notifier,
	}
}

// Create inserts a new budget and publishes a change notification
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	r.notifier.Publish(TableBudgets)
	return nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	budget := &models.Budget{ID: id}
	if err := r.db.First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// GetAll retrieves every budget ordered by creation time
func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("created_at ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// Update applies a partial update to a budget
func (r *budgetRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	// Hooks validate the full record; a partial update runs them against a
	// zero-valued model, so callers validate the merged record instead.
	result := r.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Budget{ID: id}).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	r.notifier.Publish(TableBudgets)
	return nil
}

// Delete removes a budget by ID
func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Budget{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	r.notifier.Publish(TableBudgets)
	return nil
}

// ReplaceAll clears the table and bulk-inserts the given budgets as one
// recoverable unit
func (r *budgetRepository) ReplaceAll(budgets []models.Budget) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Budget{}).Error; err != nil {
			return fmt.Errorf("failed to clear budgets: %w", err)
		}
		if len(budgets) == 0 {
			return nil
		}
		if err := tx.Create(&budgets).Error; err != nil {
			return fmt.Errorf("failed to bulk add budgets: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.notifier.Publish(TableBudgets)
	return nil
}
