package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
	Category  string
	Offset    int
	Limit     int
}

// RecurringSeriesFilters contains filtering options for recurring series queries
type RecurringSeriesFilters struct {
	AccountID         *uuid.UUID
	SubscriptionsOnly bool
	ActiveOnly        bool
}
