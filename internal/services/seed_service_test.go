package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/md8-habibullah/ledger-tracker/internal/database"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

func TestSeedService(t *testing.T) {
	suite.Run(t, new(SeedServiceSuite))
}

type SeedServiceSuite struct {
	suite.Suite
	db      *database.DB
	catRepo repositories.CategoryRepositoryInterface
	seed    SeedServiceInterface
}

func (s *SeedServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.catRepo = repositories.NewCategoryRepository(s.db.DB, repositories.NewNotifier())
	s.seed = NewSeedService(s.catRepo)
}

func (s *SeedServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SeedServiceSuite) TestSeedsDefaultsIntoEmptyTable() {
	s.NoError(s.seed.EnsureDefaultCategories())

	all, err := s.catRepo.GetAll()
	s.NoError(err)
	s.Len(all, len(models.DefaultCategories()))

	salary, err := s.catRepo.GetByName("Salary")
	s.NoError(err)
	s.Equal(models.CategoryTypeIncome, salary.Type)
}

func (s *SeedServiceSuite) TestSeedingIsIdempotent() {
	s.NoError(s.seed.EnsureDefaultCategories())
	s.NoError(s.seed.EnsureDefaultCategories())

	count, err := s.catRepo.Count()
	s.NoError(err)
	s.Equal(int64(len(models.DefaultCategories())), count)
}

func (s *SeedServiceSuite) TestLeavesCustomisedTableAlone() {
	custom := &models.Category{Name: "Rent", Type: models.CategoryTypeExpense}
	s.Require().NoError(s.catRepo.Create(custom))

	s.NoError(s.seed.EnsureDefaultCategories())

	count, err := s.catRepo.Count()
	s.NoError(err)
	s.Equal(int64(1), count)
}
