package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	cacheTTL         = time.Minute
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions retrieves the user's transactions with filtering
// @Summary List transactions
// @Description Retrieve a page of stored transactions, newest first. Pending transactions are included.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param account_id query string false "Linked account ID (UUID)"
// @Param start_date query string false "Earliest date (YYYY-MM-DD)"
// @Param end_date query string false "Latest date (YYYY-MM-DD)"
// @Param type query string false "expense, income or transfer"
// @Param category query string false "Display category: a heuristic label or a provider category leaf"
// @Param limit query int false "Page size (1-500, default 50)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.TransactionListResponse "Transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.ListTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	filters := models.TransactionFilters{
		UserID:   userID,
		Type:     query.Type,
		Category: query.Category,
		Offset:   query.Offset,
		Limit:    query.Limit,
	}
	if filters.Limit == 0 {
		filters.Limit = defaultPageLimit
	}

	if filters.AccountID, err = parseOptionalUUID(query.AccountID); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}
	if filters.StartDate, err = parseOptionalDate(query.StartDate); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Invalid start date"))
	}
	if filters.EndDate, err = parseOptionalDate(query.EndDate); err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Invalid end date"))
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date must not be before start_date"))
	}

	transactions, total, err := h.transactionService.ListTransactions(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		items = append(items, dto.NewTransactionResponse(&transactions[i]))
	}

	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(cacheTTL.Seconds())))

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: items,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// SetCategory sets or clears the user category of a transaction
// @Summary Set transaction category
// @Description Sets the user label, which takes precedence over provider and heuristic categories. A null category clears it.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Param request body dto.SetCategoryRequest true "Category label or null"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_001 - Unknown category label"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{transactionId}/category [patch]
func (h *TransactionHandler) SetCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.SetCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if req.Category != nil && !models.IsValidCategory(*req.Category) {
		return SendError(c, errors.CategoryInvalidLabel, errors.WithDetails(fmt.Sprintf("unknown category %q", *req.Category)))
	}

	txn, err := h.transactionService.SetUserCategory(c.Request().Context(), userID, transactionID, req.Category)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrTransactionNotFound):
			return SendError(c, errors.TransactionNotFound)
		case stderrors.Is(err, services.ErrInvalidCategory):
			return SendError(c, errors.CategoryInvalidLabel)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// AutoCategorize assigns heuristic labels to uncategorized transactions
// @Summary Auto-categorize transactions
// @Description Labels stored transactions that have neither a provider category nor a derived label
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AutoCategorizeRequest false "Batch bound"
// @Success 200 {object} dto.AutoCategorizeResponse "Number of transactions labelled"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/auto-categorize [post]
func (h *TransactionHandler) AutoCategorize(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AutoCategorizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	categorized, err := h.transactionService.AutoCategorize(c.Request().Context(), userID, req.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AutoCategorizeResponse{Categorized: categorized})
}
