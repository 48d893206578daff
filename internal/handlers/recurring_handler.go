package handlers

import (
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// RecurringHandler serves persisted recurring series
type RecurringHandler struct {
	recurringSync services.RecurringSyncServiceInterface
}

// NewRecurringHandler creates a new recurring series handler
func NewRecurringHandler(recurringSync services.RecurringSyncServiceInterface) *RecurringHandler {
	return &RecurringHandler{recurringSync: recurringSync}
}

// ListRecurring lists the user's recurring series ordered by next due date
// @Summary List recurring series
// @Tags Recurring
// @Security BearerAuth
// @Produce json
// @Param account_id query string false "Linked account ID (UUID)"
// @Param subscriptions_only query bool false "Only subscriptions"
// @Param active_only query bool false "Only active series"
// @Success 200 {object} dto.RecurringListResponse "Recurring series"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /recurring [get]
func (h *RecurringHandler) ListRecurring(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListRecurringQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	accountID, err := parseOptionalUUID(query.AccountID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	series, err := h.recurringSync.ListSeries(userID, models.RecurringSeriesFilters{
		AccountID:         accountID,
		SubscriptionsOnly: query.SubscriptionsOnly,
		ActiveOnly:        query.ActiveOnly,
	})
	if err != nil {
		return SendSystemError(c, err)
	}
	if series == nil {
		series = []models.RecurringSeries{}
	}

	return c.JSON(http.StatusOK, dto.RecurringListResponse{
		Series: series,
		Total:  len(series),
	})
}
