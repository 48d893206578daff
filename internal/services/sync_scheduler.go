package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

// SyncScheduler periodically runs the transaction sync followed by the recurring sync
// for every user with linked accounts. Scheduled runs bypass the manual cooldown.
type SyncScheduler struct {
	accountRepo     repositories.LinkedAccountRepositoryInterface
	transactionSync TransactionSyncServiceInterface
	recurringSync   RecurringSyncServiceInterface
	interval        time.Duration
	maxWorkers      int
	workerSemaphore chan struct{}
	logger          *slog.Logger
}

func NewSyncScheduler(
	accountRepo repositories.LinkedAccountRepositoryInterface,
	transactionSync TransactionSyncServiceInterface,
	recurringSync RecurringSyncServiceInterface,
	interval time.Duration,
	maxWorkers int,
) SyncSchedulerInterface {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &SyncScheduler{
		accountRepo:     accountRepo,
		transactionSync: transactionSync,
		recurringSync:   recurringSync,
		interval:        interval,
		maxWorkers:      maxWorkers,
		workerSemaphore: make(chan struct{}, maxWorkers),
		logger:          slog.Default(),
	}
}

// Start blocks until ctx is cancelled, syncing every user once per interval
func (s *SyncScheduler) Start(ctx context.Context) {
	s.logger.Info("starting sync scheduler",
		slog.Duration("interval", s.interval),
		slog.Int("max_workers", s.maxWorkers),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sync scheduler stopped")
			return

		case <-ticker.C:
			synced := s.RunOnce(ctx)
			s.logger.Info("scheduled sync cycle completed", slog.Int("users", synced))
		}
	}
}

// RunOnce syncs every user with linked accounts and returns how many users completed
// both syncs without a user-level error
func (s *SyncScheduler) RunOnce(ctx context.Context) int {
	userIDs, err := s.accountRepo.GetUserIDsWithAccounts()
	if err != nil {
		s.logger.Error("failed to list users with linked accounts",
			slog.String("error", err.Error()),
		)
		return 0
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		synced int
	)

	for _, userID := range userIDs {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()

			s.workerSemaphore <- struct{}{}
			defer func() { <-s.workerSemaphore }()

			if s.syncUser(ctx, userID) {
				mu.Lock()
				synced++
				mu.Unlock()
			}
		}(userID)
	}
	wg.Wait()

	return synced
}

func (s *SyncScheduler) syncUser(ctx context.Context, userID uuid.UUID) bool {
	ok := true

	if _, err := s.transactionSync.SyncUser(ctx, userID); err != nil && !errors.Is(err, ErrNoLinkedAccounts) {
		s.logger.Error("scheduled transaction sync failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		ok = false
	}

	// recurring detection falls back to stored history, so it still runs after a failed transaction sync
	if _, err := s.recurringSync.SyncUser(ctx, userID); err != nil && !errors.Is(err, ErrNoLinkedAccounts) {
		s.logger.Error("scheduled recurring sync failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		ok = false
	}

	return ok
}
