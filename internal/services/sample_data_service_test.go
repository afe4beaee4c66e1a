package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/md8-habibullah/ledger-tracker/internal/database"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

func TestSampleDataService(t *testing.T) {
	suite.Run(t, new(SampleDataServiceSuite))
}

type SampleDataServiceSuite struct {
	suite.Suite
	db      *database.DB
	txRepo  repositories.TransactionRepositoryInterface
	sampler SampleDataServiceInterface
}

func (s *SampleDataServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.txRepo = repositories.NewTransactionRepository(s.db.DB, repositories.NewNotifier())
	s.sampler = NewSampleDataService(s.txRepo)
}

func (s *SampleDataServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SampleDataServiceSuite) TestGeneratesValidHistory() {
	s.NoError(s.sampler.GenerateSampleData(3, 10))

	all, err := s.txRepo.GetAll()
	s.NoError(err)
	// One salary per month plus the requested expenses, freelance extra.
	s.GreaterOrEqual(len(all), 3*11)

	defaults := make(map[string]bool)
	for _, category := range models.DefaultCategories() {
		defaults[category.Name] = true
	}
	for _, transaction := range all {
		s.NoError(transaction.Validate())
		s.True(defaults[transaction.Category], "unexpected category %q", transaction.Category)
	}
}

func (s *SampleDataServiceSuite) TestSkipsNonEmptyStore() {
	s.Require().NoError(s.txRepo.Create(&models.Transaction{
		Amount:   10,
		Type:     models.TransactionTypeExpense,
		Category: "Shopping",
	}))

	s.NoError(s.sampler.GenerateSampleData(3, 10))

	count, err := s.txRepo.Count()
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *SampleDataServiceSuite) TestRejectsNonPositiveArguments() {
	s.Error(s.sampler.GenerateSampleData(0, 10))
	s.Error(s.sampler.GenerateSampleData(3, -1))
}
