package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB, notifier *Notifier) TransactionRepositoryInterface {
	return &transactionRepository{
		db:       db,
		notifier: notifier,
	}
}

// Create inserts a new transaction and publishes a change notification
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	r.notifier.Publish(TableTransactions)
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetAll retrieves every transaction in the stable feed order
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.
		Order("date DESC, created_at DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// Update applies a partial update to a transaction. Writes are last-writer-wins;
// no optimistic-concurrency token is carried.
func (r *transactionRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	// Hooks validate the full record; a partial update runs them against a
	// zero-valued model, so callers validate the merged record instead.
	result := r.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Transaction{ID: id}).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	r.notifier.Publish(TableTransactions)
	return nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	r.notifier.Publish(TableTransactions)
	return nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// ReplaceAll clears the table and bulk-inserts the given transactions as one
// recoverable unit. On failure the table keeps its prior rows.
func (r *transactionRepository) ReplaceAll(transactions []models.Transaction) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}
		if len(transactions) == 0 {
			return nil
		}
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to bulk add transactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.notifier.Publish(TableTransactions)
	return nil
}
