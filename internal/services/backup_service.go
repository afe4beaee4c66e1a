package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
)

var (
	ErrMalformedBackup     = errors.New("backup file is not valid JSON")
	ErrEmptyBackup         = errors.New("backup file contains no importable tables")
	ErrInvalidBackupRecord = errors.New("backup file contains an invalid record")
)

// BackupFile is the on-disk export format. Field names match the files the
// original web app produced so backups stay interchangeable.
type BackupFile struct {
	Transactions []models.Transaction `json:"transactions"`
	Categories   []models.Category    `json:"categories"`
	Budgets      []models.Budget      `json:"budgets"`
	ExportedAt   time.Time            `json:"exportedAt"`
	AppName      string               `json:"appName,omitempty"`
	AppVersion   string               `json:"appVersion,omitempty"`
}

// backupPayload is the import-side view. Pointer slices distinguish an
// absent key, which leaves the table untouched, from an empty array, which
// clears it.
type backupPayload struct {
	Transactions *[]models.Transaction `json:"transactions"`
	Categories   *[]models.Category    `json:"categories"`
	Budgets      *[]models.Budget      `json:"budgets"`
}

// ImportSummary reports how many records each table received.
type ImportSummary struct {
	Transactions int `json:"transactions"`
	Categories   int `json:"categories"`
	Budgets      int `json:"budgets"`
}

type backupService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	metrics         MetricsRecorderInterface
	appName         string
	appVersion      string
}

// NewBackupService creates a new backup service
func NewBackupService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
	appName, appVersion string,
) BackupServiceInterface {
	return &backupService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		metrics:         metrics,
		appName:         appName,
		appVersion:      appVersion,
	}
}

func (s *backupService) Export() (*BackupFile, error) {
	transactions, err := s.transactionRepo.GetAll()
	if err != nil {
		s.metrics.RecordBackup("export", err)
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		s.metrics.RecordBackup("export", err)
		return nil, fmt.Errorf("failed to export categories: %w", err)
	}
	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		s.metrics.RecordBackup("export", err)
		return nil, fmt.Errorf("failed to export budgets: %w", err)
	}

	s.metrics.RecordBackup("export", nil)
	slog.Info("Ledger exported",
		"transactions", len(transactions),
		"categories", len(categories),
		"budgets", len(budgets))

	return &BackupFile{
		Transactions: transactions,
		Categories:   categories,
		Budgets:      budgets,
		ExportedAt:   time.Now().UTC(),
		AppName:      s.appName,
		AppVersion:   s.appVersion,
	}, nil
}

// Import replaces the contents of every table present in the payload.
// Parsing and validation finish before any table is cleared, so a bad file
// never destroys data.
func (s *backupService) Import(data []byte) (*ImportSummary, error) {
	var payload backupPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		s.metrics.RecordBackup("import", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	if payload.Transactions == nil && payload.Categories == nil && payload.Budgets == nil {
		s.metrics.RecordBackup("import", ErrEmptyBackup)
		return nil, ErrEmptyBackup
	}

	if err := s.validatePayload(&payload); err != nil {
		s.metrics.RecordBackup("import", err)
		return nil, err
	}

	summary := &ImportSummary{}

	// Categories land first so imported transactions and budgets always
	// reference rows that exist.
	if payload.Categories != nil {
		if err := s.categoryRepo.ReplaceAll(*payload.Categories); err != nil {
			s.metrics.RecordBackup("import", err)
			return nil, fmt.Errorf("failed to import categories: %w", err)
		}
		summary.Categories = len(*payload.Categories)
	}
	if payload.Transactions != nil {
		if err := s.transactionRepo.ReplaceAll(*payload.Transactions); err != nil {
			s.metrics.RecordBackup("import", err)
			return nil, fmt.Errorf("failed to import transactions: %w", err)
		}
		summary.Transactions = len(*payload.Transactions)
	}
	if payload.Budgets != nil {
		if err := s.budgetRepo.ReplaceAll(*payload.Budgets); err != nil {
			s.metrics.RecordBackup("import", err)
			return nil, fmt.Errorf("failed to import budgets: %w", err)
		}
		summary.Budgets = len(*payload.Budgets)
	}

	s.metrics.RecordBackup("import", nil)
	slog.Info("Ledger imported",
		"transactions", summary.Transactions,
		"categories", summary.Categories,
		"budgets", summary.Budgets)
	return summary, nil
}

func (s *backupService) validatePayload(payload *backupPayload) error {
	if payload.Categories != nil {
		for i := range *payload.Categories {
			if err := (*payload.Categories)[i].Validate(); err != nil {
				return fmt.Errorf("%w: categories[%d]: %v", ErrInvalidBackupRecord, i, err)
			}
		}
	}
	if payload.Transactions != nil {
		for i := range *payload.Transactions {
			if err := (*payload.Transactions)[i].Validate(); err != nil {
				return fmt.Errorf("%w: transactions[%d]: %v", ErrInvalidBackupRecord, i, err)
			}
		}
	}
	if payload.Budgets != nil {
		for i := range *payload.Budgets {
			if err := (*payload.Budgets)[i].Validate(); err != nil {
				return fmt.Errorf("%w: budgets[%d]: %v", ErrInvalidBackupRecord, i, err)
			}
		}
	}
	return nil
}
