package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
	"github.com/md8-habibullah/ledger-tracker/internal/repositories"
	"github.com/md8-habibullah/ledger-tracker/internal/stats"
)

var (
	ErrUnknownCategory     = errors.New("category does not exist")
	ErrCategoryNotEligible = errors.New("category is not eligible for this transaction type")
)

type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	trendMonths     int

	mu       sync.RWMutex
	snapshot models.LedgerSnapshot

	subMu   sync.Mutex
	subs    map[int]chan models.LedgerSnapshot
	nextSub int

	cancelWatch func()
	done        chan struct{}
}

// NewLedgerService computes the initial snapshot and starts the watch
// goroutine that recomputes on every store change notification.
func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	notifier *repositories.Notifier,
	trendMonths int,
	metrics MetricsRecorderInterface,
) (LedgerServiceInterface, error) {
	if trendMonths <= 0 {
		trendMonths = stats.DefaultTrendMonths
	}
	s := &ledgerService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		trendMonths:     trendMonths,
		subs:            make(map[int]chan models.LedgerSnapshot),
		done:            make(chan struct{}),
	}

	if err := s.Refresh(); err != nil {
		return nil, fmt.Errorf("initial snapshot: %w", err)
	}

	changes, cancel := notifier.Subscribe()
	s.cancelWatch = cancel
	go s.watch(changes)

	return s, nil
}

// watch drains store change notifications. The notifier coalesces pending
// publishes across tables into a single event, so the watcher must re-read
// on every event; filtering by table here would drop transaction changes
// that were folded into an event for another table.
func (s *ledgerService) watch(changes <-chan repositories.TableChange) {
	defer close(s.done)
	for change := range changes {
		if err := s.Refresh(); err != nil {
			slog.Error("Snapshot refresh failed", "table", change.Table, "error", err)
		}
	}
}

func (s *ledgerService) Snapshot() models.LedgerSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *ledgerService) Subscribe() (<-chan models.LedgerSnapshot, func()) {
	// Capacity one plus drain-before-send keeps slow consumers current
	// instead of backlogged.
	ch := make(chan models.LedgerSnapshot, 1)
	ch <- s.Snapshot()

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *ledgerService) Refresh() error {
	start := time.Now()

	transactions, err := s.transactionRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	statistics := stats.Compute(transactions, time.Now(), s.trendMonths)
	snapshot := models.LedgerSnapshot{
		Transactions: transactions,
		Stats:        statistics,
		ComputedAt:   time.Now(),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	s.metrics.RecordRecompute(time.Since(start), len(transactions))
	s.fanOut(snapshot)
	return nil
}

func (s *ledgerService) fanOut(snapshot models.LedgerSnapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func (s *ledgerService) AddTransaction(input AddTransactionInput) (*models.Transaction, error) {
	transaction := &models.Transaction{
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
	}
	if err := transaction.Validate(); err != nil {
		s.metrics.RecordMutation("transactions", "create", err)
		return nil, err
	}
	if err := s.checkCategory(transaction.Category, transaction.Type); err != nil {
		s.metrics.RecordMutation("transactions", "create", err)
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		s.metrics.RecordMutation("transactions", "create", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.metrics.RecordMutation("transactions", "create", nil)

	// The watch goroutine will also refresh, but the contract is that the
	// snapshot reflects this write before we return.
	if err := s.Refresh(); err != nil {
		return nil, err
	}

	slog.Info("Transaction added",
		"transaction_id", transaction.ID,
		"type", transaction.Type,
		"category", transaction.Category,
		"amount", transaction.Amount)
	return transaction, nil
}

func (s *ledgerService) UpdateTransaction(id uuid.UUID, input UpdateTransactionInput) (*models.Transaction, error) {
	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	updates := make(map[string]interface{})
	if input.Amount != nil {
		merged.Amount = *input.Amount
		updates["amount"] = *input.Amount
	}
	if input.Type != nil {
		merged.Type = *input.Type
		updates["type"] = *input.Type
	}
	if input.Category != nil {
		merged.Category = *input.Category
		updates["category"] = *input.Category
	}
	if input.Description != nil {
		merged.Description = *input.Description
		updates["description"] = *input.Description
	}
	if input.Date != nil {
		merged.Date = *input.Date
		updates["date"] = *input.Date
	}
	if len(updates) == 0 {
		return existing, nil
	}

	if err := merged.Validate(); err != nil {
		s.metrics.RecordMutation("transactions", "update", err)
		return nil, err
	}
	if input.Category != nil || input.Type != nil {
		if err := s.checkCategory(merged.Category, merged.Type); err != nil {
			s.metrics.RecordMutation("transactions", "update", err)
			return nil, err
		}
	}

	if err := s.transactionRepo.Update(id, updates); err != nil {
		s.metrics.RecordMutation("transactions", "update", err)
		return nil, err
	}
	s.metrics.RecordMutation("transactions", "update", nil)

	if err := s.Refresh(); err != nil {
		return nil, err
	}

	slog.Info("Transaction updated", "transaction_id", id, "fields", len(updates))
	return &merged, nil
}

func (s *ledgerService) DeleteTransaction(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		s.metrics.RecordMutation("transactions", "delete", err)
		return err
	}
	s.metrics.RecordMutation("transactions", "delete", nil)

	if err := s.Refresh(); err != nil {
		return err
	}

	slog.Info("Transaction deleted", "transaction_id", id)
	return nil
}

func (s *ledgerService) Close() {
	if s.cancelWatch != nil {
		s.cancelWatch()
		<-s.done
	}
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *ledgerService) checkCategory(name, transactionType string) error {
	category, err := s.categoryRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrUnknownCategory
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if !category.EligibleFor(transactionType) {
		return ErrCategoryNotEligible
	}
	return nil
}
