package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey is the context key under which request handlers store the trace id
const CorrelationIDKey contextKey = "correlation_id"

// SyncLogger emits one structured event per sync milestone
type SyncLogger struct {
	logger *slog.Logger
}

func NewSyncLogger(logger *slog.Logger) SyncLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncLogger{
		logger: logger,
	}
}

func (l *SyncLogger) LogSyncStarted(ctx context.Context, kind string, userID uuid.UUID, accounts int) {
	l.logger.InfoContext(ctx, "sync started",
		slog.String("event_type", "sync_started"),
		slog.String("kind", kind),
		slog.String("user_id", userID.String()),
		slog.Int("accounts", accounts),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *SyncLogger) LogSyncCompleted(ctx context.Context, kind string, userID uuid.UUID, succeeded, failed int, durationMs int64) {
	l.logger.InfoContext(ctx, "sync completed",
		slog.String("event_type", "sync_completed"),
		slog.String("kind", kind),
		slog.String("user_id", userID.String()),
		slog.Int("accounts_succeeded", succeeded),
		slog.Int("accounts_failed", failed),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *SyncLogger) LogAccountFailed(ctx context.Context, kind string, accountID uuid.UUID, errorMsg string) {
	l.logger.WarnContext(ctx, "account sync failed",
		slog.String("event_type", "account_sync_failed"),
		slog.String("kind", kind),
		slog.String("account_id", accountID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *SyncLogger) LogRecordSkipped(ctx context.Context, accountID uuid.UUID, recordID, reason string) {
	l.logger.WarnContext(ctx, "malformed record skipped",
		slog.String("event_type", "record_skipped"),
		slog.String("account_id", accountID.String()),
		slog.String("record_id", recordID),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *SyncLogger) LogRecurringSourceSelected(ctx context.Context, accountID uuid.UUID, source string, series int) {
	l.logger.InfoContext(ctx, "recurring source selected",
		slog.String("event_type", "recurring_source_selected"),
		slog.String("account_id", accountID.String()),
		slog.String("source", source),
		slog.Int("series", series),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *SyncLogger) LogCooldownRejected(ctx context.Context, userID uuid.UUID, retryAfter time.Duration) {
	l.logger.InfoContext(ctx, "sync rejected during cooldown",
		slog.String("event_type", "sync_cooldown_rejected"),
		slog.String("user_id", userID.String()),
		slog.Int64("retry_after_seconds", int64(retryAfter.Seconds())),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *SyncLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	l.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
