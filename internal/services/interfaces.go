package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
)

// AddTransactionInput carries a new transaction through the mutation boundary.
type AddTransactionInput struct {
	Amount      float64
	Type        string
	Category    string
	Description string
	Date        time.Time
}

// UpdateTransactionInput is a partial update; nil fields are left unchanged.
type UpdateTransactionInput struct {
	Amount      *float64
	Type        *string
	Category    *string
	Description *string
	Date        *time.Time
}

// BudgetInput carries budget create/update requests.
type BudgetInput struct {
	Category string
	Amount   float64
	Period   string
}

// LedgerServiceInterface is the reactive binding layer: it owns the live
// transaction list plus derived statistics and the mutation operations.
type LedgerServiceInterface interface {
	// Snapshot returns the latest consistent view. After a mutation method
	// returns, Snapshot already reflects it.
	Snapshot() models.LedgerSnapshot
	// Subscribe delivers every new snapshot to the returned channel until
	// the cancel function is called. Slow consumers observe the newest
	// snapshot only.
	Subscribe() (<-chan models.LedgerSnapshot, func())
	AddTransaction(input AddTransactionInput) (*models.Transaction, error)
	UpdateTransaction(id uuid.UUID, input UpdateTransactionInput) (*models.Transaction, error)
	DeleteTransaction(id uuid.UUID) error
	// Refresh re-reads the store and recomputes statistics. It is driven
	// automatically by store change notifications; calling it by hand is
	// only needed after out-of-band writes.
	Refresh() error
	Close()
}

// BudgetServiceInterface defines budget CRUD plus progress evaluation
type BudgetServiceInterface interface {
	CreateBudget(input BudgetInput) (*models.Budget, error)
	UpdateBudget(id uuid.UUID, input BudgetInput) (*models.Budget, error)
	DeleteBudget(id uuid.UUID) error
	GetBudgets() ([]models.Budget, error)
	// Evaluate combines one budget with a category breakdown.
	Evaluate(budget models.Budget, breakdown map[string]float64) models.BudgetProgress
	// ListProgress evaluates every budget against the live breakdown.
	ListProgress() ([]models.BudgetProgress, error)
}

// CategoryServiceInterface defines category listing and management
type CategoryServiceInterface interface {
	GetCategories() ([]models.Category, error)
	// GetCategoriesForType returns the categories eligible for the given
	// transaction type, including "both" categories.
	GetCategoriesForType(transactionType string) ([]models.Category, error)
	CreateCategory(category *models.Category) error
	DeleteCategory(id uuid.UUID) error
}

// SeedServiceInterface defines first-run data seeding
type SeedServiceInterface interface {
	// EnsureDefaultCategories inserts the default category set when the
	// table is empty; it never overwrites existing rows.
	EnsureDefaultCategories() error
}

// SampleDataServiceInterface generates plausible development data
type SampleDataServiceInterface interface {
	// GenerateSampleData fills an empty transactions table with generated
	// history spanning the given number of trailing months.
	GenerateSampleData(months, perMonth int) error
}

// BackupServiceInterface defines whole-store export and import
type BackupServiceInterface interface {
	Export() (*BackupFile, error)
	Import(data []byte) (*ImportSummary, error)
}

// PreferenceServiceInterface defines application preference access
type PreferenceServiceInterface interface {
	GetPreferences() (Preferences, error)
	SetCurrency(code string) error
	SetNumberFormat(mode string) error
	SetTheme(id string) error
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordRecompute(duration time.Duration, transactionCount int)
	RecordMutation(table, operation string, err error)
	RecordBackup(operation string, err error)
}
