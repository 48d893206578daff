package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeExpense  = "expense"
	TransactionTypeIncome   = "income"
	TransactionTypeTransfer = "transfer"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrMissingProviderID      = errors.New("provider transaction id is required")
)

// Transaction is the canonical, post-normalization transaction record.
// Positive amounts are money leaving the account, negative amounts money entering it.
// Amounts keep the provider's precision so the stored sign always matches transaction_type.
type Transaction struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_transactions_user_provider_id,priority:1" json:"user_id"`
	AccountID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	ProviderTransactionID string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_transactions_user_provider_id,priority:2" json:"provider_transaction_id"`
	Amount                decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Date                  time.Time       `gorm:"type:date;not null;index" json:"date"`
	Name                  string          `gorm:"type:varchar(255);not null" json:"name"`
	MerchantName          *string         `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	Category              CategoryPath    `gorm:"type:text" json:"category,omitempty"`
	DerivedCategory       string          `gorm:"type:varchar(50)" json:"derived_category,omitempty"`
	UserCategory          *string         `gorm:"type:varchar(50)" json:"user_category,omitempty"`
	Pending               bool            `gorm:"not null" json:"pending"`
	TransactionType       string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// BeforeSave keeps transaction_type consistent with the amount sign on every write
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.TransactionType = TransactionTypeForAmount(t.Amount)
	return nil
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.TransactionType = TransactionTypeForAmount(t.Amount)
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if t.ProviderTransactionID == "" {
		return ErrMissingProviderID
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	return nil
}

// TransactionTypeForAmount derives the transaction type from the amount sign
func TransactionTypeForAmount(amount decimal.Decimal) string {
	switch amount.Sign() {
	case 1:
		return TransactionTypeExpense
	case -1:
		return TransactionTypeIncome
	default:
		return TransactionTypeTransfer
	}
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// DisplayName returns the merchant name when present, otherwise the raw name
func (t *Transaction) DisplayName() string {
	if t.MerchantName != nil && strings.TrimSpace(*t.MerchantName) != "" {
		return *t.MerchantName
	}
	return t.Name
}

// HasAuthoritativeCategory reports whether the provider supplied a category path
func (t *Transaction) HasAuthoritativeCategory() bool {
	return len(t.Category) > 0
}

// DisplayCategory resolves the label shown to the user:
// user override, then provider category leaf, then derived label.
func (t *Transaction) DisplayCategory() string {
	if t.UserCategory != nil && *t.UserCategory != "" {
		return *t.UserCategory
	}
	if leaf := t.Category.Leaf(); leaf != "" {
		return leaf
	}
	if t.DerivedCategory != "" {
		return t.DerivedCategory
	}
	return CategoryUncategorized
}

// AbsAmount returns the magnitude of the amount
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}
