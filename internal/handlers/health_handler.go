package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"

	healthPingTimeout = 2 * time.Second
)

// HealthCheckHandler reports database reachability and whether provider syncs are currently allowed
type HealthCheckHandler struct {
	db      *gorm.DB
	breaker services.CircuitBreakerInterface
}

func NewHealthCheckHandler(db *gorm.DB, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck pings the database and reads the provider circuit breaker
// @Summary Health check
// @Description Database connectivity plus the aggregation provider breaker state. An open breaker reports "degraded" with 200.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is up"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Database unreachable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	response := dto.HealthResponse{
		Status:   healthStatusHealthy,
		Database: "up",
		Provider: "unknown",
		Time:     time.Now().UTC().Format(time.RFC3339),
	}
	if h.breaker != nil {
		state := h.breaker.GetState()
		response.Provider = state.String()
		if state == services.StateOpen {
			response.Status = healthStatusDegraded
		}
	}

	return c.JSON(http.StatusOK, response)
}
