package services

import (
	"strings"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const providerDateLayout = "2006-01-02"

// Stream directions as reported by the provider
const (
	StreamDirectionInflow  = "inflow"
	StreamDirectionOutflow = "outflow"
)

// NormalizeTransaction converts a raw provider record into the canonical transaction.
// Optional fields degrade to absent values. A record without an id, an amount or a
// parseable date is rejected with a MalformedRecordError.
func NormalizeTransaction(userID, accountID uuid.UUID, raw dto.ProviderTransaction) (*models.Transaction, error) {
	id := strings.TrimSpace(raw.TransactionID)
	if id == "" {
		return nil, &MalformedRecordError{Field: "transaction_id", Reason: "is missing"}
	}
	if raw.Amount == nil {
		return nil, &MalformedRecordError{RecordID: id, Field: "amount", Reason: "is missing"}
	}
	date, err := parseProviderDate(raw.Date)
	if err != nil {
		return nil, &MalformedRecordError{RecordID: id, Field: "date", Reason: err.Error()}
	}
	if date == nil {
		return nil, &MalformedRecordError{RecordID: id, Field: "date", Reason: "is missing"}
	}

	amount := *raw.Amount
	return &models.Transaction{
		UserID:                userID,
		AccountID:             accountID,
		ProviderTransactionID: id,
		Amount:                amount,
		Date:                  *date,
		Name:                  strings.TrimSpace(raw.Name),
		MerchantName:          optionalString(raw.MerchantName),
		Category:              categoryPath(raw.Category),
		Pending:               raw.Pending,
		TransactionType:       models.TransactionTypeForAmount(amount),
	}, nil
}

// NormalizeStream converts a provider recurring stream into a series candidate.
// Outflow streams become expenses and inflow streams income. The caller classifies
// the subscription flag and projects the next due date.
func NormalizeStream(userID, accountID uuid.UUID, direction string, raw dto.ProviderRecurringStream) (*models.RecurringSeries, error) {
	recordID := raw.StreamID

	name := strings.TrimSpace(raw.Description)
	merchant := optionalString(raw.MerchantName)
	displayName := name
	if merchant != nil {
		displayName = *merchant
	}
	if displayName == "" {
		return nil, &MalformedRecordError{RecordID: recordID, Field: "description", Reason: "is missing"}
	}
	if name == "" {
		name = displayName
	}
	key := models.NormalizeMerchantKey(displayName)
	if key == "" {
		return nil, &MalformedRecordError{RecordID: recordID, Field: "description", Reason: "has no alphanumeric characters"}
	}

	var transactionType string
	switch strings.ToLower(direction) {
	case StreamDirectionOutflow:
		transactionType = models.TransactionTypeExpense
	case StreamDirectionInflow:
		transactionType = models.TransactionTypeIncome
	default:
		return nil, &MalformedRecordError{RecordID: recordID, Field: "direction", Reason: "must be inflow or outflow"}
	}

	lastAmount := streamAmount(raw.LastAmount)
	averageAmount := streamAmount(raw.AverageAmount)
	if lastAmount == nil && averageAmount == nil {
		return nil, &MalformedRecordError{RecordID: recordID, Field: "amount", Reason: "is missing"}
	}
	if lastAmount == nil {
		lastAmount = averageAmount
	}
	if averageAmount == nil {
		averageAmount = lastAmount
	}

	firstDate, err := parseProviderDate(raw.FirstDate)
	if err != nil {
		firstDate = nil
	}
	lastDate, err := parseProviderDate(raw.LastDate)
	if err != nil {
		lastDate = nil
	}

	isActive := true
	if raw.IsActive != nil {
		isActive = *raw.IsActive
	}

	return &models.RecurringSeries{
		UserID:              userID,
		AccountID:           accountID,
		NormalizedName:      key,
		Name:                name,
		MerchantName:        merchant,
		ExpectedAmount:      lastAmount.Abs().Round(2),
		AverageAmount:       averageAmount.Abs().Round(2),
		Frequency:           models.NormalizeFrequency(raw.Frequency),
		StartDate:           firstDate,
		LastTransactionDate: lastDate,
		TransactionType:     transactionType,
		IsActive:            isActive,
		TotalOccurrences:    len(raw.TransactionIDs),
		Category:            categoryPath(raw.Category),
		Source:              models.SeriesSourceProvider,
	}, nil
}

// parseProviderDate returns nil for an absent date and an error for one that cannot be parsed.
// Timestamps are accepted and truncated to their UTC calendar date.
func parseProviderDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	raw := strings.TrimSpace(*value)

	if t, err := time.Parse(providerDateLayout, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	date := toDate(t)
	return &date, nil
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func categoryPath(path []string) models.CategoryPath {
	cleaned := make(models.CategoryPath, 0, len(path))
	for _, part := range path {
		if part = strings.TrimSpace(part); part != "" {
			cleaned = append(cleaned, part)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}

func streamAmount(amount *dto.StreamAmount) *decimal.Decimal {
	if amount == nil || amount.Amount == nil {
		return nil
	}
	return amount.Amount
}
