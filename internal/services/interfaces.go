package services

import (
	"context"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregatorClientInterface is the account aggregation provider
type AggregatorClientInterface interface {
	GetTransactions(ctx context.Context, accessToken, providerAccountID string, start, end time.Time) ([]dto.ProviderTransaction, error)
	GetRecurringStreams(ctx context.Context, accessToken, providerAccountID string) (*dto.ProviderRecurringResponse, error)
}

// CategoryServiceInterface assigns heuristic spending categories
type CategoryServiceInterface interface {
	// Categorize matches name and merchant text against the keyword rules.
	// Callers must only use it for transactions without a provider category.
	Categorize(name string, merchantName *string) *models.CategorizationResult

	// BatchCategorize sets derived_category on transactions lacking a provider category
	BatchCategorize(transactions []*models.Transaction) int

	// OverrideCategory sets or clears the user-assigned label
	OverrideCategory(transaction *models.Transaction, category *string) error
}

// RecurringDetectorInterface finds recurring series in a user's transaction history
type RecurringDetectorInterface interface {
	Detect(userID uuid.UUID, transactions []models.Transaction) []*models.RecurringSeries
	ClassifySubscription(name string, averageAmount decimal.Decimal) bool
}

// CredentialVaultInterface seals and opens provider access tokens
type CredentialVaultInterface interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(sealed string) (string, error)
}

// TransactionSyncServiceInterface pulls provider transactions into storage
type TransactionSyncServiceInterface interface {
	// SyncNow is the user-triggered sync; it enforces the cooldown
	SyncNow(ctx context.Context, userID uuid.UUID) (*dto.SyncSummary, error)
	// SyncUser syncs every linked account of the user without a cooldown check
	SyncUser(ctx context.Context, userID uuid.UUID) (*dto.SyncSummary, error)
}

// RecurringSyncServiceInterface reconciles provider streams and detected patterns into stored series
type RecurringSyncServiceInterface interface {
	SyncUser(ctx context.Context, userID uuid.UUID) (*dto.RecurringSyncReport, error)
	ListSeries(userID uuid.UUID, filters models.RecurringSeriesFilters) ([]models.RecurringSeries, error)
}

// TransactionServiceInterface serves stored transactions and category edits
type TransactionServiceInterface interface {
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	AutoCategorize(ctx context.Context, userID uuid.UUID, limit int) (int, error)
	SetUserCategory(ctx context.Context, userID, transactionID uuid.UUID, category *string) (*models.Transaction, error)
}

// AccountServiceInterface manages linked accounts
type AccountServiceInterface interface {
	LinkAccount(ctx context.Context, userID uuid.UUID, providerAccountID, name, mask, accountType, subtype, accessToken string) (*models.LinkedAccount, error)
	GetLinkedAccounts(userID uuid.UUID) ([]models.LinkedAccount, error)
}

// SyncSchedulerInterface runs periodic syncs for every user with linked accounts
type SyncSchedulerInterface interface {
	Start(ctx context.Context)
	RunOnce(ctx context.Context) int
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration, tags map[string]string)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type SyncLoggerInterface interface {
	LogSyncStarted(ctx context.Context, kind string, userID uuid.UUID, accounts int)
	LogSyncCompleted(ctx context.Context, kind string, userID uuid.UUID, succeeded, failed int, durationMs int64)
	LogAccountFailed(ctx context.Context, kind string, accountID uuid.UUID, errorMsg string)
	LogRecordSkipped(ctx context.Context, accountID uuid.UUID, recordID, reason string)
	LogRecurringSourceSelected(ctx context.Context, accountID uuid.UUID, source string, series int)
	LogCooldownRejected(ctx context.Context, userID uuid.UUID, retryAfter time.Duration)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
