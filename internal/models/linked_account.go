package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkedAccount is a bank account linked through the aggregation provider.
// The provider access token is stored encrypted and never serialized.
type LinkedAccount struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_linked_accounts_user_provider,priority:1" json:"user_id"`
	ProviderAccountID    string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_linked_accounts_user_provider,priority:2" json:"provider_account_id"`
	Name                 string     `gorm:"type:varchar(255)" json:"name"`
	Mask                 string     `gorm:"type:varchar(10)" json:"mask,omitempty"`
	Type                 string     `gorm:"type:varchar(50)" json:"type,omitempty"`
	Subtype              string     `gorm:"type:varchar(50)" json:"subtype,omitempty"`
	EncryptedAccessToken string     `gorm:"type:text;not null" json:"-"`
	LastSyncedAt         *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for LinkedAccount
func (a *LinkedAccount) TableName() string {
	return "linked_accounts"
}

// BeforeCreate hook for LinkedAccount
func (a *LinkedAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if a.ProviderAccountID == "" {
		return errors.New("provider account ID is required")
	}
	if a.EncryptedAccessToken == "" {
		return errors.New("access token is required")
	}
	return nil
}
