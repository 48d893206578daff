package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

const defaultAutoCategorizeLimit = 500

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categorizer     CategoryServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categorizer CategoryServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categorizer:     categorizer,
		metrics:         metrics,
		logger:          logger,
	}
}

// ListTransactions returns a filtered page of the user's transactions and the total match count.
// The category filter matches the display category, so provider leaves such as "Restaurants"
// are accepted next to the heuristic labels.
func (s *transactionService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	filters.Category = strings.TrimSpace(filters.Category)
	return s.transactionRepo.ListByUser(filters)
}

// AutoCategorize labels stored transactions that have neither a provider category nor a label yet
func (s *transactionService) AutoCategorize(ctx context.Context, userID uuid.UUID, limit int) (int, error) {
	if limit <= 0 {
		limit = defaultAutoCategorizeLimit
	}

	transactions, err := s.transactionRepo.GetUncategorized(userID, limit)
	if err != nil {
		return 0, err
	}
	if len(transactions) == 0 {
		return 0, nil
	}

	s.categorizer.BatchCategorize(transactions)

	categorized := 0
	for _, txn := range transactions {
		if txn.DerivedCategory == "" {
			continue
		}
		if err := s.transactionRepo.UpdateDerivedCategory(txn.ID, txn.DerivedCategory); err != nil {
			return categorized, fmt.Errorf("failed to store category for transaction %s: %w", txn.ID, err)
		}
		categorized++
	}

	s.metrics.AddCounter(MetricAutoCategorized, float64(categorized), nil)
	s.logger.InfoContext(ctx, "auto categorization completed",
		slog.String("user_id", userID.String()),
		slog.Int("categorized", categorized),
	)

	return categorized, nil
}

// SetUserCategory applies or clears the user label. Setting the label it already has is a no-op.
func (s *transactionService) SetUserCategory(ctx context.Context, userID, transactionID uuid.UUID, category *string) (*models.Transaction, error) {
	txn, err := s.transactionRepo.GetByID(userID, transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	if err := s.categorizer.OverrideCategory(txn, category); err != nil {
		if errors.Is(err, ErrCategoryNotChanged) {
			return txn, nil
		}
		return nil, err
	}

	if err := s.transactionRepo.UpdateUserCategory(userID, transactionID, txn.UserCategory); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user category updated",
		slog.String("transaction_id", transactionID.String()),
		slog.String("category", txn.DisplayCategory()),
	)

	return txn, nil
}
