package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/md8-habibullah/ledger-tracker/internal/database"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
)

func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerSuite))
}

type DashboardHandlerSuite struct {
	suite.Suite
	e       *echo.Echo
	db      *database.DB
	ledger  services.LedgerServiceInterface
	handler *DashboardHandler
}

func (s *DashboardHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.db = database.SetupTestDB(s.T())
	notifier := repositories.NewNotifier()
	txRepo := repositories.NewTransactionRepository(s.db.DB, notifier)
	catRepo := repositories.NewCategoryRepository(s.db.DB, notifier)
	s.Require().NoError(catRepo.CreateBatch(models.DefaultCategories()))

	prefRepo := repositories.NewPreferenceRepository(s.db.DB)

	ledger, err := services.NewLedgerService(txRepo, catRepo, notifier, 6, services.NewNoopMetrics())
	s.Require().NoError(err)
	s.ledger = ledger
	s.handler = NewDashboardHandler(ledger, services.NewPreferenceService(prefRepo))
}

func (s *DashboardHandlerSuite) TearDownTest() {
	s.ledger.Close()
	database.CleanupTestDB(s.T(), s.db)
}

func (s *DashboardHandlerSuite) TestGetStatistics() {
	_, err := s.ledger.AddTransaction(services.AddTransactionInput{
		Amount:   1000,
		Type:     models.TransactionTypeIncome,
		Category: "Salary",
		Date:     time.Now(),
	})
	s.Require().NoError(err)
	_, err = s.ledger.AddTransaction(services.AddTransactionInput{
		Amount:   100,
		Type:     models.TransactionTypeExpense,
		Category: "Shopping",
		Date:     time.Now(),
	})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.GetStatistics(c))
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data DashboardResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(900.0, body.Data.Stats.Balance)
	s.Equal(1000.0, body.Data.Stats.MonthlyIncome)
	s.Equal(100.0, body.Data.Stats.MonthlyExpenses)
	s.Equal(100.0, body.Data.Stats.CategoryBreakdown["Shopping"])
	s.Len(body.Data.Stats.MonthlyTrends, 6)

	// Default preferences are BDT in international mode.
	s.Equal("৳900", body.Data.FormattedTotals.Balance)
	s.Equal("৳1,000", body.Data.FormattedTotals.MonthlyIncome)
	s.Equal("৳100", body.Data.FormattedTotals.MonthlyExpenses)

	s.Require().Len(body.Data.RecentTransactions, 2)
	s.Equal("Shopping", body.Data.RecentTransactions[0].Category)
}

func (s *DashboardHandlerSuite) TestGetStatisticsLimitsRecentTransactions() {
	for i := 0; i < recentTransactionLimit+2; i++ {
		_, err := s.ledger.AddTransaction(services.AddTransactionInput{
			Amount:   10,
			Type:     models.TransactionTypeExpense,
			Category: "Shopping",
			Date:     time.Now(),
		})
		s.Require().NoError(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.GetStatistics(c))

	var body struct {
		Data DashboardResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Data.RecentTransactions, recentTransactionLimit)
}

func (s *DashboardHandlerSuite) TestStreamSendsInitialSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.StreamSnapshots(c))
	s.Equal("text/event-stream", rec.Header().Get(echo.HeaderContentType))
	s.Contains(rec.Body.String(), "data: ")
	s.Contains(rec.Body.String(), `"balance"`)
}
