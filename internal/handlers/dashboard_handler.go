package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/md8-habibullah/ledger-tracker/internal/format"
	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
)

const recentTransactionLimit = 5

// DashboardHandler serves derived statistics and the live snapshot stream
type DashboardHandler struct {
	ledger      services.LedgerServiceInterface
	preferences services.PreferenceServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(ledger services.LedgerServiceInterface, preferences services.PreferenceServiceInterface) *DashboardHandler {
	return &DashboardHandler{ledger: ledger, preferences: preferences}
}

// DashboardResponse bundles the latest statistics with display-ready totals
// and the most recent transactions.
type DashboardResponse struct {
	Stats              models.Statistics    `json:"stats"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
	FormattedTotals    FormattedTotals      `json:"formattedTotals"`
}

// FormattedTotals renders the headline amounts in the stored currency and
// number format, so clients do not need their own formatting rules.
type FormattedTotals struct {
	Balance         string `json:"balance"`
	MonthlyIncome   string `json:"monthlyIncome"`
	MonthlyExpenses string `json:"monthlyExpenses"`
}

// GetStatistics returns the latest derived statistics
func (h *DashboardHandler) GetStatistics(c echo.Context) error {
	snapshot := h.ledger.Snapshot()

	prefs, err := h.preferences.GetPreferences()
	if err != nil {
		return SendSystemError(c, err)
	}
	currency, err := format.CurrencyByCode(prefs.Currency)
	if err != nil {
		// GetPreferences falls back to defaults for unknown codes, so a
		// miss here means the catalog and store disagree.
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: DashboardResponse{
			Stats:              snapshot.Stats,
			RecentTransactions: recentTransactions(snapshot.Transactions),
			FormattedTotals: FormattedTotals{
				Balance:         format.Amount(snapshot.Stats.Balance, currency, prefs.NumberFormat),
				MonthlyIncome:   format.Amount(snapshot.Stats.MonthlyIncome, currency, prefs.NumberFormat),
				MonthlyExpenses: format.Amount(snapshot.Stats.MonthlyExpenses, currency, prefs.NumberFormat),
			},
		},
		Meta: map[string]interface{}{"computedAt": snapshot.ComputedAt},
	})
}

// recentTransactions takes the newest entries from the snapshot, which is
// already ordered date-descending.
func recentTransactions(transactions []models.Transaction) []models.Transaction {
	if len(transactions) <= recentTransactionLimit {
		return transactions
	}
	return transactions[:recentTransactionLimit]
}

// StreamSnapshots pushes every new snapshot to the client as a
// server-sent event. The first event fires immediately with the current
// snapshot, mirroring the statistics endpoint.
func (h *DashboardHandler) StreamSnapshots(c echo.Context) error {
	response := c.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)

	snapshots, cancel := h.ledger.Subscribe()
	defer cancel()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, ok := <-snapshots:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(snapshot.Stats)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(response, "data: %s\n\n", payload); err != nil {
				return err
			}
			response.Flush()
		}
	}
}
