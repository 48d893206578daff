package handlers

import (
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles linked account HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts lists the authenticated user's linked accounts
// @Summary List linked accounts
// @Description Provider access tokens are never returned
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.LinkedAccountListResponse "Linked accounts"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accounts, err := h.accountService.GetLinkedAccounts(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	if accounts == nil {
		accounts = []models.LinkedAccount{}
	}

	return c.JSON(http.StatusOK, dto.LinkedAccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}
