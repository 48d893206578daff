package dto

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListTransactionsQuery holds the query parameters of GET /transactions
type ListTransactionsQuery struct {
	AccountID string `query:"account_id" validate:"omitempty,uuid"`
	StartDate string `query:"start_date" validate:"omitempty,calendar_date"`
	EndDate   string `query:"end_date" validate:"omitempty,calendar_date"`
	Type      string `query:"type" validate:"omitempty,oneof=expense income transfer"`
	Category  string `query:"category" validate:"omitempty,max=100"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

// SetCategoryRequest sets or, with a null category, clears the user override
type SetCategoryRequest struct {
	Category *string `json:"category" validate:"omitempty,category_label"`
}

// AutoCategorizeRequest bounds how many transactions are labelled in one call
type AutoCategorizeRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=1000"`
}

// AutoCategorizeResponse reports how many transactions received a derived label
type AutoCategorizeResponse struct {
	Categorized int `json:"categorized"`
}

// TransactionResponse is a transaction as shown to the user
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	Name            string          `json:"name"`
	MerchantName    *string         `json:"merchant_name,omitempty"`
	DisplayName     string          `json:"display_name"`
	Category        []string        `json:"category,omitempty"`
	DerivedCategory string          `json:"derived_category,omitempty"`
	UserCategory    *string         `json:"user_category,omitempty"`
	DisplayCategory string          `json:"display_category"`
	Pending         bool            `json:"pending"`
	TransactionType string          `json:"transaction_type"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewTransactionResponse builds the user-facing view of a stored transaction
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		AccountID:       t.AccountID,
		Amount:          t.Amount,
		Date:            t.Date.Format("2006-01-02"),
		Name:            t.Name,
		MerchantName:    t.MerchantName,
		DisplayName:     t.DisplayName(),
		Category:        t.Category,
		DerivedCategory: t.DerivedCategory,
		UserCategory:    t.UserCategory,
		DisplayCategory: t.DisplayCategory(),
		Pending:         t.Pending,
		TransactionType: t.TransactionType,
		UpdatedAt:       t.UpdatedAt,
	}
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}
