package dto

import "finance-dashboard/internal/models"

// ListRecurringQuery holds the query parameters of GET /recurring
type ListRecurringQuery struct {
	AccountID         string `query:"account_id" validate:"omitempty,uuid"`
	SubscriptionsOnly bool   `query:"subscriptions_only"`
	ActiveOnly        bool   `query:"active_only"`
}

// RecurringListResponse lists persisted recurring series ordered by next due date
type RecurringListResponse struct {
	Series []models.RecurringSeries `json:"series"`
	Total  int                      `json:"total"`
}
