package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

// Server is the HTTP API together with the background sync scheduler
type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	services *Services
	logger   *slog.Logger
}

// New wires services and routes. ctx bounds background helpers such as the
// rate limiter cleanup loop.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svcs, err := NewServices(cfg, db, registry, logger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiter(ctx, cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	s := &Server{
		echo:     e,
		cfg:      cfg,
		services: svcs,
		logger:   logger,
	}
	s.registerRoutes(db, prometheus.Gatherers{registry, prometheus.DefaultGatherer})

	return s, nil
}

func (s *Server) registerRoutes(db *gorm.DB, gatherer prometheus.Gatherer) {
	healthHandler := handlers.NewHealthCheckHandler(db, s.services.ProviderBreaker)
	syncHandler := handlers.NewSyncHandler(s.services.TransactionSync, s.services.RecurringSync)
	recurringHandler := handlers.NewRecurringHandler(s.services.RecurringSync)
	transactionHandler := handlers.NewTransactionHandler(s.services.Transactions)
	accountHandler := handlers.NewAccountHandler(s.services.Accounts)

	s.echo.GET("/health", healthHandler.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := s.echo.Group("/api/v1", middleware.RequireAuth(s.services.Tokens))

	api.POST("/sync", syncHandler.SyncNow)
	api.POST("/recurring/sync", syncHandler.SyncRecurring)
	api.GET("/recurring", recurringHandler.ListRecurring)

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.PATCH("/transactions/:transactionId/category", transactionHandler.SetCategory)
	api.POST("/transactions/auto-categorize", transactionHandler.AutoCategorize)

	api.GET("/accounts", accountHandler.ListAccounts)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Services returns the wired service graph
func (s *Server) Services() *Services {
	return s.services
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
// The scheduler runs alongside when enabled.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.Sync.SchedulerEnabled {
		go s.services.Scheduler.Start(ctx)
	}

	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
