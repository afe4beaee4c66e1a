package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/md8-habibullah/ledger-tracker/internal/database"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

type CategoryServiceSuite struct {
	suite.Suite
	db         *database.DB
	categories CategoryServiceInterface
}

func (s *CategoryServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	catRepo := repositories.NewCategoryRepository(s.db.DB, repositories.NewNotifier())
	s.Require().NoError(catRepo.CreateBatch(models.DefaultCategories()))
	s.categories = NewCategoryService(catRepo, NewNoopMetrics())
}

func (s *CategoryServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryServiceSuite) TestGetCategoriesForTypeFiltersEligibility() {
	income, err := s.categories.GetCategoriesForType(models.TransactionTypeIncome)
	s.NoError(err)
	expense, err := s.categories.GetCategoriesForType(models.TransactionTypeExpense)
	s.NoError(err)

	for _, category := range income {
		s.True(category.Type == models.CategoryTypeIncome || category.Type == models.CategoryTypeBoth)
	}
	for _, category := range expense {
		s.True(category.Type == models.CategoryTypeExpense || category.Type == models.CategoryTypeBoth)
	}
	s.NotEmpty(income)
	s.NotEmpty(expense)
}

func (s *CategoryServiceSuite) TestGetCategoriesForTypeRejectsUnknownType() {
	_, err := s.categories.GetCategoriesForType("transfer")
	s.ErrorIs(err, models.ErrInvalidTransactionType)
}

func (s *CategoryServiceSuite) TestCreateAndDeleteCategory() {
	category := &models.Category{Name: "Rent", Icon: "Home", Color: "#64748b", Type: models.CategoryTypeExpense}
	s.NoError(s.categories.CreateCategory(category))
	s.NotEqual(uuid.Nil, category.ID)

	s.NoError(s.categories.DeleteCategory(category.ID))
	s.ErrorIs(s.categories.DeleteCategory(category.ID), repositories.ErrCategoryNotFound)
}

func (s *CategoryServiceSuite) TestCreateCategoryRejectsInvalidType() {
	category := &models.Category{Name: "Weird", Type: "sideways"}
	s.ErrorIs(s.categories.CreateCategory(category), models.ErrInvalidCategoryType)
}
