package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, metrics MetricsRecorderInterface) CategoryServiceInterface {
	return &categoryService{categoryRepo: categoryRepo, metrics: metrics}
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetCategoriesForType(transactionType string) ([]models.Category, error) {
	if !models.IsValidTransactionType(transactionType) {
		return nil, models.ErrInvalidTransactionType
	}
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	eligible := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if category.EligibleFor(transactionType) {
			eligible = append(eligible, category)
		}
	}
	return eligible, nil
}

func (s *categoryService) CreateCategory(category *models.Category) error {
	if err := category.Validate(); err != nil {
		s.metrics.RecordMutation("categories", "create", err)
		return err
	}
	if err := s.categoryRepo.Create(category); err != nil {
		s.metrics.RecordMutation("categories", "create", err)
		return fmt.Errorf("failed to create category: %w", err)
	}
	s.metrics.RecordMutation("categories", "create", nil)

	slog.Info("Category created", "category_id", category.ID, "name", category.Name)
	return nil
}

func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		s.metrics.RecordMutation("categories", "delete", err)
		return err
	}
	s.metrics.RecordMutation("categories", "delete", nil)

	slog.Info("Category deleted", "category_id", id)
	return nil
}
