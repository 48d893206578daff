package dto

import "github.com/shopspring/decimal"

// Aggregation provider wire shapes. Required fields are pointers so a missing
// value can be told apart from a zero value when records are normalized.

// ProviderTransaction is one raw transaction record as returned by the provider
type ProviderTransaction struct {
	TransactionID string           `json:"transaction_id"`
	AccountID     string           `json:"account_id"`
	Amount        *decimal.Decimal `json:"amount"`
	Date          *string          `json:"date"`
	Name          string           `json:"name"`
	MerchantName  *string          `json:"merchant_name"`
	Category      []string         `json:"category"`
	Pending       bool             `json:"pending"`
}

// StreamAmount is an amount with its currency as reported on a recurring stream
type StreamAmount struct {
	Amount          *decimal.Decimal `json:"amount"`
	IsoCurrencyCode string           `json:"iso_currency_code,omitempty"`
}

// ProviderRecurringStream is an authoritative recurring-charge record reported by the provider
type ProviderRecurringStream struct {
	StreamID       string        `json:"stream_id"`
	AccountID      string        `json:"account_id"`
	Description    string        `json:"description"`
	MerchantName   *string       `json:"merchant_name"`
	FirstDate      *string       `json:"first_date"`
	LastDate       *string       `json:"last_date"`
	Frequency      string        `json:"frequency"`
	AverageAmount  *StreamAmount `json:"average_amount"`
	LastAmount     *StreamAmount `json:"last_amount"`
	IsActive       *bool         `json:"is_active"`
	Status         string        `json:"status,omitempty"`
	TransactionIDs []string      `json:"transaction_ids"`
	Category       []string      `json:"category"`
}

// ProviderRecurringResponse groups streams by direction
type ProviderRecurringResponse struct {
	InflowStreams  []ProviderRecurringStream `json:"inflow_streams"`
	OutflowStreams []ProviderRecurringStream `json:"outflow_streams"`
}

// Len returns the total number of streams in both directions
func (r *ProviderRecurringResponse) Len() int {
	if r == nil {
		return 0
	}
	return len(r.InflowStreams) + len(r.OutflowStreams)
}

// ProviderTransactionsRequest is the body of a transactions page request
type ProviderTransactionsRequest struct {
	ClientID    string                     `json:"client_id"`
	Secret      string                     `json:"secret"`
	AccessToken string                     `json:"access_token"`
	StartDate   string                     `json:"start_date"`
	EndDate     string                     `json:"end_date"`
	Options     ProviderTransactionOptions `json:"options"`
}

type ProviderTransactionOptions struct {
	AccountIDs []string `json:"account_ids,omitempty"`
	Count      int      `json:"count"`
	Offset     int      `json:"offset"`
}

// ProviderTransactionsResponse is one page of transactions
type ProviderTransactionsResponse struct {
	Transactions      []ProviderTransaction `json:"transactions"`
	TotalTransactions int                   `json:"total_transactions"`
	RequestID         string                `json:"request_id,omitempty"`
}

// ProviderRecurringRequest is the body of a recurring streams request
type ProviderRecurringRequest struct {
	ClientID    string   `json:"client_id"`
	Secret      string   `json:"secret"`
	AccessToken string   `json:"access_token"`
	AccountIDs  []string `json:"account_ids,omitempty"`
}

// ProviderErrorResponse is the error body returned on non-2xx responses
type ProviderErrorResponse struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	RequestID    string `json:"request_id,omitempty"`
}
