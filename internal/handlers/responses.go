package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handlers answer errors only through SendError (4xx and business rules such as the
// sync cooldown) and SendSystemError (500, internal detail logged, never returned).

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err with the trace id and user, then answers with a generic SYSTEM_001
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)

	attrs := []any{
		slog.String("trace_id", traceID),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
	}
	if userID, ok := c.Get("user_id").(uuid.UUID); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	slog.ErrorContext(c.Request().Context(), "request failed", attrs...)

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendCooldown answers a manual sync made inside the cooldown window with 429 SYNC_001.
// Retry-After carries the remaining wait in whole seconds.
func sendCooldown(c echo.Context, rateLimited *services.RateLimitedError) error {
	c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rateLimited.RetryAfter)))

	opts := []errors.ErrorOption{
		errors.WithMessage(fmt.Sprintf("Sync available again in %s", humanizeWait(rateLimited.RetryAfter))),
	}
	if !rateLimited.LastSyncedAt.IsZero() {
		opts = append(opts, errors.WithDetails("last synced at "+rateLimited.LastSyncedAt.UTC().Format(time.RFC3339)))
	}
	return SendError(c, errors.SyncCooldownActive, opts...)
}
