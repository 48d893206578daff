package repositories

import (
	"errors"
	"fmt"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLinkedAccountNotFound = errors.New("linked account not found")
)

type linkedAccountRepository struct {
	db *gorm.DB
}

// NewLinkedAccountRepository creates a new linked account repository
func NewLinkedAccountRepository(db *gorm.DB) LinkedAccountRepositoryInterface {
	return &linkedAccountRepository{
		db: db,
	}
}

// Create stores a newly linked account
func (r *linkedAccountRepository) Create(account *models.LinkedAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create linked account: %w", err)
	}
	return nil
}

// GetByID retrieves a linked account owned by userID
func (r *linkedAccountRepository) GetByID(userID, id uuid.UUID) (*models.LinkedAccount, error) {
	var account models.LinkedAccount
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkedAccountNotFound
		}
		return nil, fmt.Errorf("failed to get linked account: %w", err)
	}
	return &account, nil
}

// GetByUserID retrieves all linked accounts of a user
func (r *linkedAccountRepository) GetByUserID(userID uuid.UUID) ([]models.LinkedAccount, error) {
	var accounts []models.LinkedAccount
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get linked accounts: %w", err)
	}
	return accounts, nil
}

// GetLatestSyncTime always queries the database so every server instance sees the same value
func (r *linkedAccountRepository) GetLatestSyncTime(userID uuid.UUID) (*time.Time, error) {
	var account models.LinkedAccount
	err := r.db.Where("user_id = ? AND last_synced_at IS NOT NULL", userID).
		Order("last_synced_at DESC").
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest sync time: %w", err)
	}
	return account.LastSyncedAt, nil
}

// UpdateLastSynced stamps a successful sync
func (r *linkedAccountRepository) UpdateLastSynced(id uuid.UUID, syncedAt time.Time) error {
	result := r.db.Model(&models.LinkedAccount{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"last_synced_at": syncedAt,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update last synced time: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLinkedAccountNotFound
	}
	return nil
}

// GetUserIDsWithAccounts lists every user that has at least one linked account
func (r *linkedAccountRepository) GetUserIDsWithAccounts() ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	if err := r.db.Model(&models.LinkedAccount{}).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list users with linked accounts: %w", err)
	}
	return userIDs, nil
}
