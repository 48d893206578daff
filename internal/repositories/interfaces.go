package repositories

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	// UpsertBatch inserts or replaces transactions keyed by (user_id, provider_transaction_id).
	// user_category is never overwritten.
	UpsertBatch(transactions []*models.Transaction) (int, error)
	GetByID(userID, id uuid.UUID) (*models.Transaction, error)
	GetRecentByAccountID(userID, accountID uuid.UUID, limit int) ([]models.Transaction, error)
	ListByUser(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetUncategorized(userID uuid.UUID, limit int) ([]*models.Transaction, error)
	UpdateDerivedCategory(id uuid.UUID, category string) error
	UpdateUserCategory(userID, id uuid.UUID, category *string) error
}

// LinkedAccountRepositoryInterface defines the contract for linked account operations
type LinkedAccountRepositoryInterface interface {
	Create(account *models.LinkedAccount) error
	GetByID(userID, id uuid.UUID) (*models.LinkedAccount, error)
	GetByUserID(userID uuid.UUID) ([]models.LinkedAccount, error)
	// GetLatestSyncTime reads the most recent last_synced_at across the user's accounts, nil if never synced
	GetLatestSyncTime(userID uuid.UUID) (*time.Time, error)
	UpdateLastSynced(id uuid.UUID, syncedAt time.Time) error
	GetUserIDsWithAccounts() ([]uuid.UUID, error)
}

// RecurringSeriesRepositoryInterface defines the contract for recurring series operations
type RecurringSeriesRepositoryInterface interface {
	// UpsertBatch replaces every derived column of series keyed by (user_id, normalized_name, account_id)
	UpsertBatch(series []*models.RecurringSeries) (int, error)
	GetByUserID(userID uuid.UUID, filters models.RecurringSeriesFilters) ([]models.RecurringSeries, error)
}
