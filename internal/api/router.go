// Package api assembles the HTTP surface: routes, middleware, and metrics.
package api

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/md8-habibullah/ledger-tracker/internal/config"
	"github.com/md8-habibullah/ledger-tracker/internal/handlers"
	"github.com/md8-habibullah/ledger-tracker/internal/middleware"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
	"github.com/md8-habibullah/ledger-tracker/internal/validation"
)

// Services groups the service layer dependencies of the router.
type Services struct {
	Ledger      services.LedgerServiceInterface
	Budgets     services.BudgetServiceInterface
	Categories  services.CategoryServiceInterface
	Backup      services.BackupServiceInterface
	Preferences services.PreferenceServiceInterface
}

// NewRouter wires every route and middleware onto a fresh Echo instance.
func NewRouter(cfg *config.Config, db *gorm.DB, svc Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	validator := validation.NewValidator()

	healthHandler := handlers.NewHealthCheckHandler(db)
	transactionHandler := handlers.NewTransactionHandler(svc.Ledger, validator)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories, validator)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets, validator)
	dashboardHandler := handlers.NewDashboardHandler(svc.Ledger, svc.Preferences)
	backupHandler := handlers.NewBackupHandler(svc.Backup)
	settingsHandler := handlers.NewSettingsHandler(svc.Preferences, validator)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	api.GET("/budgets", budgetHandler.ListBudgets)
	api.GET("/budgets/progress", budgetHandler.ListBudgetProgress)
	api.POST("/budgets", budgetHandler.CreateBudget)
	api.PUT("/budgets/:id", budgetHandler.UpdateBudget)
	api.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	api.GET("/dashboard", dashboardHandler.GetStatistics)
	api.GET("/dashboard/stream", dashboardHandler.StreamSnapshots)

	api.GET("/export", backupHandler.Export)
	api.POST("/import", backupHandler.Import)

	api.GET("/settings", settingsHandler.GetSettings)
	api.PUT("/settings", settingsHandler.UpdateSettings)
	api.GET("/settings/currencies", settingsHandler.ListCurrencies)
	api.GET("/settings/themes", settingsHandler.ListThemes)

	return e
}
