package models

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SeriesSourceProvider = "provider"
	SeriesSourceDetected = "detected"
)

// seriesNamespace seeds the name-based UUIDs of recurring series
var seriesNamespace = uuid.MustParse("6f2d1c8e-41a7-4b51-9a0e-3c7d5b2e8f14")

// RecurringSeries is a group of transactions that represents a repeating obligation,
// either reported by the provider or detected locally.
// (user_id, normalized_name, account_id) is the natural key.
type RecurringSeries struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_recurring_series_natural_key,priority:1" json:"user_id"`
	NormalizedName      string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_recurring_series_natural_key,priority:2" json:"-"`
	AccountID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_recurring_series_natural_key,priority:3" json:"account_id"`
	Name                string          `gorm:"type:varchar(255);not null" json:"name"`
	MerchantName        *string         `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	ExpectedAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"expected_amount"`
	AverageAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"average_amount"`
	Frequency           string          `gorm:"type:varchar(50);not null" json:"frequency"`
	StartDate           *time.Time      `gorm:"type:date" json:"start_date,omitempty"`
	LastTransactionDate *time.Time      `gorm:"type:date" json:"last_transaction_date,omitempty"`
	NextDueDate         *time.Time      `gorm:"type:date;index" json:"next_due_date"`
	TransactionType     string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	IsSubscription      bool            `gorm:"not null" json:"is_subscription"`
	IsActive            bool            `gorm:"not null" json:"is_active"`
	TotalOccurrences    int             `gorm:"not null" json:"total_occurrences"`
	Category            CategoryPath    `gorm:"type:text" json:"category,omitempty"`
	Source              string          `gorm:"type:varchar(20);not null" json:"source"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for RecurringSeries
func (s *RecurringSeries) TableName() string {
	return "recurring_series"
}

// BeforeCreate hook for RecurringSeries
func (s *RecurringSeries) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = SeriesID(s.UserID, s.NormalizedName, s.AccountID)
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// Validate validates the series fields
func (s *RecurringSeries) Validate() error {
	if s.UserID == uuid.Nil || s.AccountID == uuid.Nil {
		return errors.New("user ID and account ID are required")
	}
	if s.NormalizedName == "" {
		return errors.New("normalized name is required")
	}
	if s.TransactionType != TransactionTypeExpense && s.TransactionType != TransactionTypeIncome {
		return ErrInvalidTransactionType
	}
	return nil
}

// NaturalKey returns the upsert key of the series
func (s *RecurringSeries) NaturalKey() string {
	return s.UserID.String() + "|" + s.NormalizedName + "|" + s.AccountID.String()
}

// SeriesID derives a stable identifier from the natural key
func SeriesID(userID uuid.UUID, normalizedName string, accountID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(seriesNamespace, []byte(userID.String()+"|"+normalizedName+"|"+accountID.String()))
}

// NormalizeMerchantKey lower-cases a display name and strips every non-alphanumeric rune.
// The result is a grouping key, never a display value.
func NormalizeMerchantKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DisplayName returns the merchant name when present, otherwise the series name
func (s *RecurringSeries) DisplayName() string {
	if s.MerchantName != nil && strings.TrimSpace(*s.MerchantName) != "" {
		return *s.MerchantName
	}
	return s.Name
}
