package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/md8-habibullah/ledger-tracker/internal/database"
	"github.com/md8-habibullah/ledger-tracker/internal/format"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
	"github.com/md8-habibullah/ledger-tracker/internal/validation"
)

func TestSettingsHandler(t *testing.T) {
	suite.Run(t, new(SettingsHandlerSuite))
}

type SettingsHandlerSuite struct {
	suite.Suite
	e       *echo.Echo
	db      *database.DB
	handler *SettingsHandler
}

func (s *SettingsHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.db = database.SetupTestDB(s.T())
	prefs := services.NewPreferenceService(repositories.NewPreferenceRepository(s.db.DB))
	s.handler = NewSettingsHandler(prefs, validation.NewValidator())
}

func (s *SettingsHandlerSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SettingsHandlerSuite) request(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/v1/settings", nil)
	} else {
		req = httptest.NewRequest(method, "/api/v1/settings", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *SettingsHandlerSuite) TestGetSettingsReturnsDefaults() {
	c, rec := s.request(http.MethodGet, "")
	s.NoError(s.handler.GetSettings(c))
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data services.Preferences `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(format.DefaultCurrency().Code, body.Data.Currency)
	s.Equal("dark", body.Data.Theme)
}

func (s *SettingsHandlerSuite) TestUpdateSettingsPartial() {
	c, rec := s.request(http.MethodPut, `{"theme": "sunset", "currency": "GBP"}`)
	s.NoError(s.handler.UpdateSettings(c))
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data services.Preferences `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("sunset", body.Data.Theme)
	s.Equal("GBP", body.Data.Currency)
	// Untouched key keeps its default.
	s.Equal("international", body.Data.NumberFormat)
}

func (s *SettingsHandlerSuite) TestUpdateSettingsRejectsUnknownCurrency() {
	c, rec := s.request(http.MethodPut, `{"currency": "ZZZ"}`)
	s.NoError(s.handler.UpdateSettings(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "SETTINGS_003")
}

func (s *SettingsHandlerSuite) TestUpdateSettingsRejectsEmptyPayload() {
	c, rec := s.request(http.MethodPut, `{}`)
	s.NoError(s.handler.UpdateSettings(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "SETTINGS_001")
}

func (s *SettingsHandlerSuite) TestListCurrenciesKeepsCatalogOrder() {
	c, rec := s.request(http.MethodGet, "")
	s.NoError(s.handler.ListCurrencies(c))
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data []format.Currency `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Data, 8)
	s.Equal("BDT", body.Data[0].Code)
	s.Equal("USD", body.Data[1].Code)
}

func (s *SettingsHandlerSuite) TestListThemes() {
	c, rec := s.request(http.MethodGet, "")
	s.NoError(s.handler.ListThemes(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ocean")
}
