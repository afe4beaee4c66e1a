package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB, notifier *Notifier) CategoryRepositoryInterface {
	return &categoryRepository{
		db:       db,
		notifier: notifier,
	}
}

// Create inserts a new category and publishes a change notification
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	r.notifier.Publish(TableCategories)
	return nil
}

// GetAll retrieves every category ordered by name
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByName retrieves a category by its unique name
func (r *categoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// Delete removes a category by ID
func (r *categoryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Category{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	r.notifier.Publish(TableCategories)
	return nil
}

// Count returns the number of stored categories
func (r *categoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// CreateBatch inserts the given categories in one store transaction
func (r *categoryRepository) CreateBatch(categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to create batch categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.notifier.Publish(TableCategories)
	return nil
}

// ReplaceAll clears the table and bulk-inserts the given categories as one
// recoverable unit
func (r *categoryRepository) ReplaceAll(categories []models.Category) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
			return fmt.Errorf("failed to clear categories: %w", err)
		}
		if len(categories) == 0 {
			return nil
		}
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to bulk add categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.notifier.Publish(TableCategories)
	return nil
}
