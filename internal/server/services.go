package server

import (
	"context"
	"fmt"
	"log/slog"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Services is the wired application graph shared by the HTTP server and the CLI
type Services struct {
	Accounts        services.AccountServiceInterface
	Transactions    services.TransactionServiceInterface
	TransactionSync services.TransactionSyncServiceInterface
	RecurringSync   services.RecurringSyncServiceInterface
	Scheduler       services.SyncSchedulerInterface
	Tokens          services.TokenServiceInterface
	AccountRepo     repositories.LinkedAccountRepositoryInterface
	ProviderBreaker services.CircuitBreakerInterface
}

// NewServices builds repositories and services from configuration.
// Sync metrics are registered with reg.
func NewServices(cfg *config.Config, db *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) (*Services, error) {
	keywords, err := loadKeywords(cfg.Detection.KeywordsFile)
	if err != nil {
		return nil, err
	}

	vault, err := services.NewCredentialVault(cfg.Vault.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential vault: %w", err)
	}

	metrics := services.NewPrometheusMetrics(reg)
	syncLogger := services.NewSyncLogger(logger)
	categorizer := services.NewCategoryService(keywords)
	detector := services.NewRecurringDetector(keywords, cfg.Detection.SubscriptionThreshold)
	client := NewAggregatorClient(&cfg.Provider, logger)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Provider.BreakerMaxFailures,
		ResetTimeout:    cfg.Provider.BreakerResetTimeout,
		HalfOpenMaxSucc: 1,
		OnStateChange: func(from, to models.CircuitBreakerState) {
			syncLogger.LogCircuitBreakerStateChange(context.Background(), "aggregator", from.String(), to.String())
			metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), nil)
		},
	})

	accountRepo := repositories.NewLinkedAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	seriesRepo := repositories.NewRecurringSeriesRepository(db)

	transactionSync := services.NewTransactionSyncService(
		accountRepo, transactionRepo, client, vault, categorizer, breaker, syncLogger, metrics,
		services.TransactionSyncConfig{
			Cooldown:     cfg.Sync.Cooldown,
			LookbackDays: cfg.Sync.LookbackDays,
			MaxWorkers:   cfg.Sync.MaxWorkers,
		},
	)
	recurringSync := services.NewRecurringSyncService(
		accountRepo, transactionRepo, seriesRepo, client, vault, detector, breaker, syncLogger, metrics,
		services.RecurringSyncConfig{
			LookbackLimit: cfg.Detection.LookbackLimit,
			MaxWorkers:    cfg.Sync.MaxWorkers,
		},
	)

	return &Services{
		Accounts:        services.NewAccountService(accountRepo, vault, logger),
		Transactions:    services.NewTransactionService(transactionRepo, categorizer, metrics, logger),
		TransactionSync: transactionSync,
		RecurringSync:   recurringSync,
		Scheduler:       services.NewSyncScheduler(accountRepo, transactionSync, recurringSync, cfg.Sync.SchedulerInterval, cfg.Sync.MaxWorkers),
		Tokens:          services.NewTokenService(&cfg.JWT),
		AccountRepo:     accountRepo,
		ProviderBreaker: breaker,
	}, nil
}

// NewAggregatorClient returns the provider client selected by PROVIDER_MODE
func NewAggregatorClient(cfg *config.ProviderConfig, logger *slog.Logger) services.AggregatorClientInterface {
	if cfg.Mode == config.ProviderModeHTTP {
		return services.NewHTTPAggregatorClient(cfg, logger)
	}
	logger.Info("using sandbox aggregation provider")
	return services.NewSandboxAggregatorClient()
}

func loadKeywords(path string) (*models.KeywordConfig, error) {
	if path == "" {
		return services.DefaultKeywordConfig(), nil
	}
	keywords, err := services.LoadKeywordConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load keywords from %s: %w", path, err)
	}
	return keywords, nil
}
