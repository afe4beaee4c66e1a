package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/md8-habibullah/ledger-tracker/internal/database"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
)

func TestBackupHandler(t *testing.T) {
	suite.Run(t, new(BackupHandlerSuite))
}

type BackupHandlerSuite struct {
	suite.Suite
	e       *echo.Echo
	db      *database.DB
	txRepo  repositories.TransactionRepositoryInterface
	catRepo repositories.CategoryRepositoryInterface
	handler *BackupHandler
}

func (s *BackupHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.db = database.SetupTestDB(s.T())
	notifier := repositories.NewNotifier()
	s.txRepo = repositories.NewTransactionRepository(s.db.DB, notifier)
	s.catRepo = repositories.NewCategoryRepository(s.db.DB, notifier)
	budgetRepo := repositories.NewBudgetRepository(s.db.DB, notifier)
	backup := services.NewBackupService(s.txRepo, s.catRepo, budgetRepo, services.NewNoopMetrics(), "LedgerTracker", "1.0.0")
	s.handler = NewBackupHandler(backup)
}

func (s *BackupHandlerSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BackupHandlerSuite) TestExportSetsDownloadHeaders() {
	s.Require().NoError(s.catRepo.CreateBatch(models.DefaultCategories()))
	s.Require().NoError(s.txRepo.Create(&models.Transaction{
		Amount:   12,
		Type:     models.TransactionTypeExpense,
		Category: "Shopping",
		Date:     time.Now(),
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.Export(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "ledger-backup-")

	var backup services.BackupFile
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &backup))
	s.Len(backup.Transactions, 1)
	s.Len(backup.Categories, len(models.DefaultCategories()))
	s.Equal("LedgerTracker", backup.AppName)
}

func (s *BackupHandlerSuite) TestImportReplacesStore() {
	payload := `{
		"categories": [{"name": "Wages", "type": "income"}],
		"transactions": [{"amount": 700, "type": "income", "category": "Wages", "date": "2024-04-01T09:00:00Z"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.Import(c))
	s.Equal(http.StatusOK, rec.Code)

	transactions, err := s.txRepo.GetAll()
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(700.0, transactions[0].Amount)
}

func (s *BackupHandlerSuite) TestImportRejectsMalformedFile() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.Import(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "IMPORT_001")
}
