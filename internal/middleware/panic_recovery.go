package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finance-dashboard/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. The panic is logged with
// the trace id and the authenticated user, and counted in api_errors_total like any other 500.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				attrs := []any{
					slog.String("trace_id", traceID),
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("method", c.Request().Method),
					slog.String("path", c.Request().URL.Path),
					slog.String("stack_trace", string(debug.Stack())),
				}
				if userID, ok := c.Get(UserIDContextKey).(uuid.UUID); ok {
					attrs = append(attrs, slog.String("user_id", userID.String()))
				}
				logger.ErrorContext(c.Request().Context(), "panic recovered", attrs...)

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				recordAPIError(c, errorResponse.Error.Code, http.StatusInternalServerError)

				// headers already sent; only the log and the counter remain
				if c.Response().Committed {
					return
				}
				if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
					logger.ErrorContext(c.Request().Context(), "failed to send panic recovery response",
						slog.String("trace_id", traceID),
						slog.String("error", err.Error()),
					)
				}
			}()

			return next(c)
		}
	}
}
