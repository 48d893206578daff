package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

const upsertBatchSize = 200

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// categoryLeafPattern matches a leaf as the last element of the JSON-encoded category path
func categoryLeafPattern(leaf string) string {
	encoded, _ := json.Marshal(leaf)
	return "%" + likeEscaper.Replace(string(encoded)) + "]"
}

// provider-owned columns replaced on every re-sync; user_category is deliberately absent
var transactionUpsertColumns = []string{
	"account_id",
	"amount",
	"date",
	"name",
	"merchant_name",
	"category",
	"derived_category",
	"pending",
	"transaction_type",
	"updated_at",
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// UpsertBatch inserts new transactions and replaces provider fields of known ones
func (r *transactionRepository) UpsertBatch(transactions []*models.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider_transaction_id"}},
			DoUpdates: clause.AssignmentColumns(transactionUpsertColumns),
		}).CreateInBatches(transactions, upsertBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert transactions: %w", err)
	}

	return len(transactions), nil
}

// GetByID retrieves a transaction owned by userID
func (r *transactionRepository) GetByID(userID, id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetRecentByAccountID retrieves the most recent transactions of an account, newest first
func (r *transactionRepository) GetRecentByAccountID(userID, accountID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND account_id = ?", userID, accountID).
		Order("date DESC").
		Order("provider_transaction_id DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// ListByUser retrieves a user's transactions with filters and pagination
func (r *transactionRepository) ListByUser(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", filters.UserID)

	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.Type != "" {
		query = query.Where("transaction_type = ?", filters.Type)
	}
	if filters.Category != "" {
		// same precedence as Transaction.DisplayCategory
		query = query.Where(
			`user_category = ? OR (user_category IS NULL AND (category LIKE ? ESCAPE '\' OR (category IS NULL AND derived_category = ?)))`,
			filters.Category, categoryLeafPattern(filters.Category), filters.Category,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetUncategorized returns transactions with no provider category, derived label or user override
func (r *transactionRepository) GetUncategorized(userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Where("category IS NULL").
		Where("derived_category IS NULL OR derived_category = ''").
		Where("user_category IS NULL").
		Order("date DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get uncategorized transactions: %w", err)
	}
	return transactions, nil
}

// UpdateDerivedCategory stores a heuristic category label
func (r *transactionRepository) UpdateDerivedCategory(id uuid.UUID, category string) error {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"derived_category": category,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update derived category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// UpdateUserCategory sets the user override, or clears it when category is nil
func (r *transactionRepository) UpdateUserCategory(userID, id uuid.UUID, category *string) error {
	var value interface{}
	if category != nil {
		value = *category
	}

	result := r.db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumns(map[string]interface{}{
			"user_category": value,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
