package repositories

import (
	"github.com/google/uuid"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction store operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	// GetAll returns every transaction ordered by date descending, ties
	// broken by created_at descending then id, so the order is total and
	// stable.
	GetAll() ([]models.Transaction, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	// ReplaceAll clears the table and bulk-inserts the given records inside
	// a single store transaction; a failed insert rolls back the clear.
	ReplaceAll(transactions []models.Transaction) error
}

// CategoryRepositoryInterface defines the contract for category store operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
	GetByName(name string) (*models.Category, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
	// CreateBatch inserts the given categories in one store transaction.
	CreateBatch(categories []models.Category) error
	ReplaceAll(categories []models.Category) error
}

// BudgetRepositoryInterface defines the contract for budget store operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetAll() ([]models.Budget, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	ReplaceAll(budgets []models.Budget) error
}

// PreferenceRepositoryInterface defines the contract for preference store operations.
// Preferences are single scalars outside the three ledger tables and do not
// participate in change notification.
type PreferenceRepositoryInterface interface {
	Get(key string) (string, error)
	Set(key, value string) error
	GetAll() (map[string]string, error)
}
