package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// SyncHandler handles manual sync requests
type SyncHandler struct {
	transactionSync services.TransactionSyncServiceInterface
	recurringSync   services.RecurringSyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(
	transactionSync services.TransactionSyncServiceInterface,
	recurringSync services.RecurringSyncServiceInterface,
) *SyncHandler {
	return &SyncHandler{
		transactionSync: transactionSync,
		recurringSync:   recurringSync,
	}
}

// SyncNow pulls fresh transactions for every linked account and then refreshes recurring series
// @Summary Sync now
// @Description Manual sync, allowed once per cooldown window. Per-account failures are reported in the body with a 200 status.
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SyncNowResponse "Sync summary, possibly with per-account failures"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "SYNC_003 - No linked accounts"
// @Failure 429 {object} errors.ErrorResponse "SYNC_001 - Sync cooldown active"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /sync [post]
func (h *SyncHandler) SyncNow(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	ctx := c.Request().Context()

	summary, err := h.transactionSync.SyncNow(ctx, userID)
	if err != nil {
		var rateLimited *services.RateLimitedError
		switch {
		case stderrors.As(err, &rateLimited):
			return sendCooldown(c, rateLimited)
		case stderrors.Is(err, services.ErrNoLinkedAccounts):
			return SendError(c, errors.SyncNoLinkedAccounts)
		default:
			return SendSystemError(c, err)
		}
	}

	report, err := h.recurringSync.SyncUser(ctx, userID)
	if err != nil && !stderrors.Is(err, services.ErrNoLinkedAccounts) {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SyncNowResponse{
		Transactions: summary,
		Recurring:    report,
	})
}

// SyncRecurring refreshes recurring series without pulling new transactions
// @Summary Sync recurring series
// @Description Uses provider streams when available, otherwise runs detection over stored transactions. Not subject to the sync cooldown.
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RecurringSyncReport "Recurring sync report"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "SYNC_003 - No linked accounts"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /recurring/sync [post]
func (h *SyncHandler) SyncRecurring(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	report, err := h.recurringSync.SyncUser(c.Request().Context(), userID)
	if err != nil {
		if stderrors.Is(err, services.ErrNoLinkedAccounts) {
			return SendError(c, errors.SyncNoLinkedAccounts)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}
