package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/md8-habibullah/ledger-tracker/internal/api"
	"github.com/md8-habibullah/ledger-tracker/internal/config"
	"github.com/md8-habibullah/ledger-tracker/internal/database"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
	"github.com/md8-habibullah/ledger-tracker/internal/services"
)

const (
	shutdownTimeout  = 10 * time.Second
	sampleDataMonths = 6
	samplePerMonth   = 15
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	notifier := repositories.NewNotifier()
	transactionRepo := repositories.NewTransactionRepository(db.DB, notifier)
	categoryRepo := repositories.NewCategoryRepository(db.DB, notifier)
	budgetRepo := repositories.NewBudgetRepository(db.DB, notifier)
	preferenceRepo := repositories.NewPreferenceRepository(db.DB)

	if err := services.NewSeedService(categoryRepo).EnsureDefaultCategories(); err != nil {
		return err
	}
	if cfg.App.SeedDemoData {
		sampler := services.NewSampleDataService(transactionRepo)
		if err := sampler.GenerateSampleData(sampleDataMonths, samplePerMonth); err != nil {
			return err
		}
	}

	metrics := services.NewPrometheusMetrics()
	ledger, err := services.NewLedgerService(transactionRepo, categoryRepo, notifier, cfg.App.TrendMonths, metrics)
	if err != nil {
		return err
	}
	defer ledger.Close()

	svc := api.Services{
		Ledger:      ledger,
		Budgets:     services.NewBudgetService(budgetRepo, categoryRepo, ledger, metrics),
		Categories:  services.NewCategoryService(categoryRepo, metrics),
		Backup:      services.NewBackupService(transactionRepo, categoryRepo, budgetRepo, metrics, cfg.App.Name, cfg.App.Version),
		Preferences: services.NewPreferenceService(preferenceRepo),
	}

	e := api.NewRouter(cfg, db.DB, svc)
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		slog.Info("Server starting",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
			"driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
