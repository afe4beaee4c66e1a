package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

const (
	salaryDayOfMonth  = 1
	freelanceOddsIn   = 3
	expenseHoursStart = 8
	expenseHoursEnd   = 22
)

// expenseProfiles maps the stock expense categories to plausible amount
// ranges and description generators.
var expenseProfiles = []struct {
	category string
	min, max float64
	describe func(f *gofakeit.Faker) string
}{
	{"Food & Dining", 5, 120, func(f *gofakeit.Faker) string { return f.Dinner() }},
	{"Transportation", 3, 80, func(f *gofakeit.Faker) string { return f.CarModel() + " fuel" }},
	{"Shopping", 10, 350, func(f *gofakeit.Faker) string { return f.ProductName() }},
	{"Entertainment", 5, 60, func(f *gofakeit.Faker) string { return f.MovieName() }},
	{"Bills & Utilities", 30, 200, func(f *gofakeit.Faker) string { return f.Company() + " bill" }},
	{"Healthcare", 15, 250, func(f *gofakeit.Faker) string { return "Pharmacy" }},
	{"Education", 20, 150, func(f *gofakeit.Faker) string { return f.BookTitle() }},
	{"Travel", 50, 600, func(f *gofakeit.Faker) string { return f.City() + " trip" }},
	{"Subscriptions", 5, 40, func(f *gofakeit.Faker) string { return f.AppName() + " subscription" }},
}

type sampleDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	faker           *gofakeit.Faker
}

// NewSampleDataService creates a generator for development fixtures
func NewSampleDataService(transactionRepo repositories.TransactionRepositoryInterface) SampleDataServiceInterface {
	return &sampleDataService{
		transactionRepo: transactionRepo,
		faker:           gofakeit.New(0),
	}
}

// GenerateSampleData fills an empty store with generated history: one
// salary deposit per month, occasional freelance income, and a spread of
// expenses. A non-empty store is left untouched.
func (s *sampleDataService) GenerateSampleData(months, perMonth int) error {
	if months <= 0 || perMonth <= 0 {
		return fmt.Errorf("sample data requires positive months and perMonth, got %d and %d", months, perMonth)
	}

	count, err := s.transactionRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}
	if count > 0 {
		slog.Debug("Sample data skipped, transactions already present", "count", count)
		return nil
	}

	now := time.Now()
	salary := s.faker.Price(2500, 4500)

	transactions := make([]models.Transaction, 0, months*(perMonth+2))
	for offset := months - 1; offset >= 0; offset-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -offset, 0)
		daysInMonth := monthStart.AddDate(0, 1, -1).Day()

		transactions = append(transactions, models.Transaction{
			Amount:      salary,
			Type:        models.TransactionTypeIncome,
			Category:    "Salary",
			Description: "Monthly salary",
			Date:        monthStart.AddDate(0, 0, salaryDayOfMonth-1).Add(9 * time.Hour),
		})
		if s.faker.Number(1, freelanceOddsIn) == 1 {
			transactions = append(transactions, models.Transaction{
				Amount:      s.faker.Price(100, 900),
				Type:        models.TransactionTypeIncome,
				Category:    "Freelance",
				Description: s.faker.JobTitle() + " gig",
				Date:        s.randomMoment(monthStart, daysInMonth),
			})
		}

		for i := 0; i < perMonth; i++ {
			profile := expenseProfiles[s.faker.Number(0, len(expenseProfiles)-1)]
			transactions = append(transactions, models.Transaction{
				Amount:      s.faker.Price(profile.min, profile.max),
				Type:        models.TransactionTypeExpense,
				Category:    profile.category,
				Description: profile.describe(s.faker),
				Date:        s.randomMoment(monthStart, daysInMonth),
			})
		}
	}

	for i := range transactions {
		if err := s.transactionRepo.Create(&transactions[i]); err != nil {
			return fmt.Errorf("failed to insert sample transaction: %w", err)
		}
	}

	slog.Info("Sample data generated", "transactions", len(transactions), "months", months)
	return nil
}

func (s *sampleDataService) randomMoment(monthStart time.Time, daysInMonth int) time.Time {
	day := s.faker.Number(1, daysInMonth)
	hour := s.faker.Number(expenseHoursStart, expenseHoursEnd-1)
	minute := s.faker.Number(0, 59)
	return time.Date(monthStart.Year(), monthStart.Month(), day, hour, minute, 0, 0, monthStart.Location())
}
