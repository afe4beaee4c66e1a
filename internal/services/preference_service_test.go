package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/md8-habibullah/ledger-tracker/internal/database"
	"github.com/md8-habibullah/ledger-tracker/internal/format"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

func TestPreferenceService(t *testing.T) {
	suite.Run(t, new(PreferenceServiceSuite))
}

type PreferenceServiceSuite struct {
	suite.Suite
	db    *database.DB
	prefs PreferenceServiceInterface
}

func (s *PreferenceServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.prefs = NewPreferenceService(repositories.NewPreferenceRepository(s.db.DB))
}

func (s *PreferenceServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *PreferenceServiceSuite) TestDefaultsOnFreshStore() {
	prefs, err := s.prefs.GetPreferences()
	s.NoError(err)
	s.Equal(format.DefaultCurrency().Code, prefs.Currency)
	s.Equal(models.NumberFormatInternational, prefs.NumberFormat)
	s.Equal("dark", prefs.Theme)
}

func (s *PreferenceServiceSuite) TestSetAndReadBack() {
	s.NoError(s.prefs.SetCurrency("EUR"))
	s.NoError(s.prefs.SetNumberFormat(models.NumberFormatLocal))
	s.NoError(s.prefs.SetTheme("ocean"))

	prefs, err := s.prefs.GetPreferences()
	s.NoError(err)
	s.Equal("EUR", prefs.Currency)
	s.Equal(models.NumberFormatLocal, prefs.NumberFormat)
	s.Equal("ocean", prefs.Theme)
}

func (s *PreferenceServiceSuite) TestRejectsInvalidValues() {
	s.ErrorIs(s.prefs.SetCurrency("XXX"), format.ErrUnknownCurrency)
	s.ErrorIs(s.prefs.SetNumberFormat("scientific"), models.ErrInvalidNumberFormat)
	s.ErrorIs(s.prefs.SetTheme("neon"), models.ErrUnknownTheme)

	// Failed writes leave the defaults intact.
	prefs, err := s.prefs.GetPreferences()
	s.NoError(err)
	s.Equal(format.DefaultCurrency().Code, prefs.Currency)
}
