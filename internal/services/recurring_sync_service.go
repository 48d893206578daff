package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

// RecurringSyncConfig bounds a recurring sync
type RecurringSyncConfig struct {
	LookbackLimit int
	MaxWorkers    int
}

type RecurringSyncService struct {
	accountRepo     repositories.LinkedAccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	seriesRepo      repositories.RecurringSeriesRepositoryInterface
	client          AggregatorClientInterface
	vault           CredentialVaultInterface
	detector        RecurringDetectorInterface
	circuitBreaker  CircuitBreakerInterface
	syncLogger      SyncLoggerInterface
	metrics         MetricsRecorderInterface
	config          RecurringSyncConfig
	workerSemaphore chan struct{}
	now             func() time.Time
	logger          *slog.Logger
}

type recurringAccountResult struct {
	source   string
	upserted int
	err      error
}

func NewRecurringSyncService(
	accountRepo repositories.LinkedAccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	seriesRepo repositories.RecurringSeriesRepositoryInterface,
	client AggregatorClientInterface,
	vault CredentialVaultInterface,
	detector RecurringDetectorInterface,
	circuitBreaker CircuitBreakerInterface,
	syncLogger SyncLoggerInterface,
	metrics MetricsRecorderInterface,
	config RecurringSyncConfig,
) RecurringSyncServiceInterface {
	if config.MaxWorkers < 1 {
		config.MaxWorkers = 1
	}
	if config.LookbackLimit < 1 {
		config.LookbackLimit = 500
	}
	return &RecurringSyncService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		seriesRepo:      seriesRepo,
		client:          client,
		vault:           vault,
		detector:        detector,
		circuitBreaker:  circuitBreaker,
		syncLogger:      syncLogger,
		metrics:         metrics,
		config:          config,
		workerSemaphore: make(chan struct{}, config.MaxWorkers),
		now:             time.Now,
		logger:          slog.Default(),
	}
}

// SyncUser refreshes the recurring series of every linked account. Provider streams win
// whenever the provider reports at least one; otherwise stored history is run through the
// detector. A failed account keeps its previously stored series.
func (s *RecurringSyncService) SyncUser(ctx context.Context, userID uuid.UUID) (*dto.RecurringSyncReport, error) {
	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load linked accounts: %w", err)
	}

	report := &dto.RecurringSyncReport{Failures: []dto.AccountFailure{}}
	if len(accounts) == 0 {
		return report, ErrNoLinkedAccounts
	}

	startTime := time.Now()
	s.syncLogger.LogSyncStarted(ctx, SyncKindRecurring, userID, len(accounts))

	results := make([]recurringAccountResult, len(accounts))
	var wg sync.WaitGroup
	for i := range accounts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.workerSemaphore <- struct{}{}
			defer func() { <-s.workerSemaphore }()

			results[i] = s.syncAccount(ctx, userID, &accounts[i])
		}(i)
	}
	wg.Wait()

	for i, result := range results {
		if result.err != nil {
			report.Failures = append(report.Failures, dto.AccountFailure{
				AccountID: accounts[i].ID.String(),
				Reason:    result.err.Error(),
			})
			s.syncLogger.LogAccountFailed(ctx, SyncKindRecurring, accounts[i].ID, result.err.Error())
			s.metrics.IncrementCounter(MetricSyncAccount, map[string]string{"kind": SyncKindRecurring, "status": syncStatusFailed})
			continue
		}

		report.AccountsProcessed++
		report.SeriesUpserted += result.upserted
		if result.source == models.SeriesSourceProvider {
			report.ProviderAccounts++
		} else {
			report.DetectedAccounts++
		}
		s.metrics.IncrementCounter(MetricSyncAccount, map[string]string{"kind": SyncKindRecurring, "status": syncStatusSuccess})
		s.metrics.AddCounter(MetricSeriesUpserted, float64(result.upserted), map[string]string{"source": result.source})
	}

	duration := time.Since(startTime)
	s.metrics.RecordProcessingTime(MetricSyncDuration, duration, map[string]string{"kind": SyncKindRecurring})
	s.syncLogger.LogSyncCompleted(ctx, SyncKindRecurring, userID, report.AccountsProcessed, len(report.Failures), duration.Milliseconds())

	return report, nil
}

func (s *RecurringSyncService) syncAccount(ctx context.Context, userID uuid.UUID, account *models.LinkedAccount) recurringAccountResult {
	accessToken, err := openAccessToken(s.vault, s.circuitBreaker, account, opFetchStreams)
	if err != nil {
		return recurringAccountResult{err: err}
	}

	streams, err := s.client.GetRecurringStreams(ctx, accessToken, account.ProviderAccountID)
	recordProviderOutcome(s.circuitBreaker, err)
	if err != nil {
		return recurringAccountResult{err: &ProviderUnavailableError{AccountID: account.ID.String(), Op: opFetchStreams, Err: err}}
	}

	var series []*models.RecurringSeries
	source := models.SeriesSourceProvider
	if streams.Len() > 0 {
		series = s.seriesFromStreams(ctx, userID, account, streams)
	} else {
		source = models.SeriesSourceDetected
		series, err = s.detectSeries(userID, account)
		if err != nil {
			return recurringAccountResult{source: source, err: err}
		}
	}

	ProjectSeries(series, s.now())
	series = DedupeSeries(series)
	s.syncLogger.LogRecurringSourceSelected(ctx, account.ID, source, len(series))

	upserted, err := s.seriesRepo.UpsertBatch(series)
	if err != nil {
		return recurringAccountResult{source: source, err: err}
	}

	return recurringAccountResult{source: source, upserted: upserted}
}

func (s *RecurringSyncService) seriesFromStreams(ctx context.Context, userID uuid.UUID, account *models.LinkedAccount, streams *dto.ProviderRecurringResponse) []*models.RecurringSeries {
	series := make([]*models.RecurringSeries, 0, streams.Len())

	directions := []struct {
		name    string
		streams []dto.ProviderRecurringStream
	}{
		{StreamDirectionOutflow, streams.OutflowStreams},
		{StreamDirectionInflow, streams.InflowStreams},
	}

	for _, direction := range directions {
		for _, stream := range direction.streams {
			candidate, err := NormalizeStream(userID, account.ID, direction.name, stream)
			if err != nil {
				var malformed *MalformedRecordError
				if errors.As(err, &malformed) {
					s.syncLogger.LogRecordSkipped(ctx, account.ID, malformed.RecordID, malformed.Error())
				}
				continue
			}
			candidate.IsSubscription = s.detector.ClassifySubscription(candidate.DisplayName(), candidate.AverageAmount)
			series = append(series, candidate)
		}
	}

	return series
}

func (s *RecurringSyncService) detectSeries(userID uuid.UUID, account *models.LinkedAccount) ([]*models.RecurringSeries, error) {
	transactions, err := s.transactionRepo.GetRecentByAccountID(userID, account.ID, s.config.LookbackLimit)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	series := s.detector.Detect(userID, transactions)
	s.metrics.RecordProcessingTime(MetricDetectionDuration, time.Since(startTime), nil)

	return series, nil
}

// ListSeries returns the stored series of a user
func (s *RecurringSyncService) ListSeries(userID uuid.UUID, filters models.RecurringSeriesFilters) ([]models.RecurringSeries, error) {
	return s.seriesRepo.GetByUserID(userID, filters)
}

// DedupeSeries keeps one candidate per natural key: the latest last occurrence wins,
// then the larger occurrence count, then the expense side. First-seen order is kept.
func DedupeSeries(series []*models.RecurringSeries) []*models.RecurringSeries {
	index := make(map[string]int, len(series))
	out := make([]*models.RecurringSeries, 0, len(series))

	for _, candidate := range series {
		key := candidate.NaturalKey()
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, candidate)
			continue
		}
		if preferSeries(candidate, out[i]) {
			out[i] = candidate
		}
	}

	return out
}

func preferSeries(candidate, current *models.RecurringSeries) bool {
	switch {
	case candidate.LastTransactionDate != nil && current.LastTransactionDate == nil:
		return true
	case candidate.LastTransactionDate == nil && current.LastTransactionDate != nil:
		return false
	case candidate.LastTransactionDate != nil && !candidate.LastTransactionDate.Equal(*current.LastTransactionDate):
		return candidate.LastTransactionDate.After(*current.LastTransactionDate)
	}

	if candidate.TotalOccurrences != current.TotalOccurrences {
		return candidate.TotalOccurrences > current.TotalOccurrences
	}

	return candidate.TransactionType == models.TransactionTypeExpense && current.TransactionType != models.TransactionTypeExpense
}
