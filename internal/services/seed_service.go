package services

import (
	"fmt"
	"log/slog"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

type seedService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewSeedService creates a new seed service
func NewSeedService(categoryRepo repositories.CategoryRepositoryInterface) SeedServiceInterface {
	return &seedService{categoryRepo: categoryRepo}
}

// EnsureDefaultCategories seeds the stock category set on first run. A
// non-empty table means the user may have customised it, so it is left
// alone even if defaults were removed.
func (s *seedService) EnsureDefaultCategories() error {
	count, err := s.categoryRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := models.DefaultCategories()
	if err := s.categoryRepo.CreateBatch(defaults); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	slog.Info("Default categories seeded", "count", len(defaults))
	return nil
}
