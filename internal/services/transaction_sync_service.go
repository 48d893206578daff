package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

const (
	SyncKindTransactions = "transactions"
	SyncKindRecurring    = "recurring"

	syncStatusSuccess = "success"
	syncStatusFailed  = "failed"

	opDecryptCredentials = "decrypt_credentials"
	opFetchTransactions  = "fetch_transactions"
	opFetchStreams       = "fetch_recurring_streams"
)

// TransactionSyncConfig bounds a transaction sync
type TransactionSyncConfig struct {
	Cooldown     time.Duration
	LookbackDays int
	MaxWorkers   int
}

type TransactionSyncService struct {
	accountRepo     repositories.LinkedAccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	client          AggregatorClientInterface
	vault           CredentialVaultInterface
	categorizer     CategoryServiceInterface
	circuitBreaker  CircuitBreakerInterface
	syncLogger      SyncLoggerInterface
	metrics         MetricsRecorderInterface
	config          TransactionSyncConfig
	workerSemaphore chan struct{}
	now             func() time.Time
	logger          *slog.Logger
}

type accountSyncResult struct {
	synced  int
	skipped int
	err     error
}

func NewTransactionSyncService(
	accountRepo repositories.LinkedAccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	client AggregatorClientInterface,
	vault CredentialVaultInterface,
	categorizer CategoryServiceInterface,
	circuitBreaker CircuitBreakerInterface,
	syncLogger SyncLoggerInterface,
	metrics MetricsRecorderInterface,
	config TransactionSyncConfig,
) TransactionSyncServiceInterface {
	if config.MaxWorkers < 1 {
		config.MaxWorkers = 1
	}
	return &TransactionSyncService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		client:          client,
		vault:           vault,
		categorizer:     categorizer,
		circuitBreaker:  circuitBreaker,
		syncLogger:      syncLogger,
		metrics:         metrics,
		config:          config,
		workerSemaphore: make(chan struct{}, config.MaxWorkers),
		now:             time.Now,
		logger:          slog.Default(),
	}
}

// SyncNow reads the latest sync time from storage on every call and rejects the request
// with a RateLimitedError while the cooldown is running
func (s *TransactionSyncService) SyncNow(ctx context.Context, userID uuid.UUID) (*dto.SyncSummary, error) {
	lastSynced, err := s.accountRepo.GetLatestSyncTime(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read last sync time: %w", err)
	}

	if lastSynced != nil {
		elapsed := s.now().Sub(*lastSynced)
		if elapsed < s.config.Cooldown {
			retryAfter := s.config.Cooldown - elapsed
			s.syncLogger.LogCooldownRejected(ctx, userID, retryAfter)
			s.metrics.IncrementCounter(MetricSyncRateLimited, nil)
			return nil, &RateLimitedError{RetryAfter: retryAfter, LastSyncedAt: *lastSynced}
		}
	}

	return s.SyncUser(ctx, userID)
}

// SyncUser syncs every linked account concurrently. One account failing never stops the others;
// failures are reported in the summary and the call itself still succeeds.
func (s *TransactionSyncService) SyncUser(ctx context.Context, userID uuid.UUID) (*dto.SyncSummary, error) {
	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load linked accounts: %w", err)
	}

	summary := &dto.SyncSummary{
		AccountsTotal: len(accounts),
		Failures:      []dto.AccountFailure{},
	}
	if len(accounts) == 0 {
		return summary, ErrNoLinkedAccounts
	}

	startTime := time.Now()
	s.syncLogger.LogSyncStarted(ctx, SyncKindTransactions, userID, len(accounts))

	results := make([]accountSyncResult, len(accounts))
	var wg sync.WaitGroup
	for i := range accounts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.workerSemaphore <- struct{}{}
			defer func() { <-s.workerSemaphore }()

			results[i] = s.syncAccount(ctx, &accounts[i])
		}(i)
	}
	wg.Wait()

	for i, result := range results {
		summary.RecordsSkipped += result.skipped
		if result.err != nil {
			summary.Failures = append(summary.Failures, dto.AccountFailure{
				AccountID: accounts[i].ID.String(),
				Reason:    result.err.Error(),
			})
			s.syncLogger.LogAccountFailed(ctx, SyncKindTransactions, accounts[i].ID, result.err.Error())
			s.metrics.IncrementCounter(MetricSyncAccount, map[string]string{"kind": SyncKindTransactions, "status": syncStatusFailed})
			continue
		}
		summary.AccountsSynced++
		summary.TransactionsSynced += result.synced
		s.metrics.IncrementCounter(MetricSyncAccount, map[string]string{"kind": SyncKindTransactions, "status": syncStatusSuccess})
	}

	duration := time.Since(startTime)
	s.metrics.AddCounter(MetricTransactionsIngested, float64(summary.TransactionsSynced), nil)
	s.metrics.AddCounter(MetricRecordsSkipped, float64(summary.RecordsSkipped), nil)
	s.metrics.RecordProcessingTime(MetricSyncDuration, duration, map[string]string{"kind": SyncKindTransactions})
	s.syncLogger.LogSyncCompleted(ctx, SyncKindTransactions, userID, summary.AccountsSynced, len(summary.Failures), duration.Milliseconds())

	return summary, nil
}

func (s *TransactionSyncService) syncAccount(ctx context.Context, account *models.LinkedAccount) accountSyncResult {
	accessToken, err := openAccessToken(s.vault, s.circuitBreaker, account, opFetchTransactions)
	if err != nil {
		return accountSyncResult{err: err}
	}

	end := toDate(s.now())
	start := end.AddDate(0, 0, -s.config.LookbackDays)

	raw, err := s.client.GetTransactions(ctx, accessToken, account.ProviderAccountID, start, end)
	recordProviderOutcome(s.circuitBreaker, err)
	if err != nil {
		return accountSyncResult{err: &ProviderUnavailableError{AccountID: account.ID.String(), Op: opFetchTransactions, Err: err}}
	}

	var result accountSyncResult
	byProviderID := make(map[string]int, len(raw))
	transactions := make([]*models.Transaction, 0, len(raw))

	for _, record := range raw {
		txn, err := NormalizeTransaction(account.UserID, account.ID, record)
		if err != nil {
			var malformed *MalformedRecordError
			if errors.As(err, &malformed) {
				s.syncLogger.LogRecordSkipped(ctx, account.ID, malformed.RecordID, malformed.Error())
				result.skipped++
				continue
			}
			return accountSyncResult{skipped: result.skipped, err: err}
		}

		if !txn.HasAuthoritativeCategory() {
			txn.DerivedCategory = s.categorizer.Categorize(txn.Name, txn.MerchantName).Category
		}

		// a page boundary can repeat a record; the later copy wins
		if idx, seen := byProviderID[txn.ProviderTransactionID]; seen {
			transactions[idx] = txn
			continue
		}
		byProviderID[txn.ProviderTransactionID] = len(transactions)
		transactions = append(transactions, txn)
	}

	synced, err := s.transactionRepo.UpsertBatch(transactions)
	if err != nil {
		return accountSyncResult{skipped: result.skipped, err: err}
	}
	result.synced = synced

	if err := s.accountRepo.UpdateLastSynced(account.ID, s.now()); err != nil {
		return accountSyncResult{synced: synced, skipped: result.skipped, err: err}
	}

	return result
}

// openAccessToken fails fast while the provider breaker is open and decrypts the stored credential
func openAccessToken(vault CredentialVaultInterface, breaker CircuitBreakerInterface, account *models.LinkedAccount, op string) (string, error) {
	if breaker.IsOpen() {
		return "", &ProviderUnavailableError{AccountID: account.ID.String(), Op: op, Err: ErrCircuitBreakerOpen}
	}

	accessToken, err := vault.Decrypt(account.EncryptedAccessToken)
	if err != nil {
		return "", &ProviderUnavailableError{AccountID: account.ID.String(), Op: opDecryptCredentials, Err: err}
	}
	return accessToken, nil
}

// recordProviderOutcome feeds the shared provider breaker. Only transport errors, 429 and 5xx count
// as failures; a 4xx answer belongs to one credential and counts as a healthy provider.
// Cancellation is ignored.
func recordProviderOutcome(breaker CircuitBreakerInterface, err error) {
	if err == nil {
		breaker.RecordSuccess()
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}

	var apiErr *ProviderAPIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusBadRequest &&
		apiErr.StatusCode < http.StatusInternalServerError && apiErr.StatusCode != http.StatusTooManyRequests {
		breaker.RecordSuccess()
		return
	}
	breaker.RecordFailure()
}
