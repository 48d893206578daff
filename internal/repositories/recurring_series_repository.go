package repositories

import (
	"fmt"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// every derived column; a re-detection replaces them all rather than merging
var recurringSeriesUpsertColumns = []string{
	"name",
	"merchant_name",
	"expected_amount",
	"average_amount",
	"frequency",
	"start_date",
	"last_transaction_date",
	"next_due_date",
	"transaction_type",
	"is_subscription",
	"is_active",
	"total_occurrences",
	"category",
	"source",
	"updated_at",
}

type recurringSeriesRepository struct {
	db *gorm.DB
}

// NewRecurringSeriesRepository creates a new recurring series repository
func NewRecurringSeriesRepository(db *gorm.DB) RecurringSeriesRepositoryInterface {
	return &recurringSeriesRepository{
		db: db,
	}
}

// UpsertBatch writes series by natural key. Series missing from the batch are left alone.
func (r *recurringSeriesRepository) UpsertBatch(series []*models.RecurringSeries) (int, error) {
	if len(series) == 0 {
		return 0, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "normalized_name"},
				{Name: "account_id"},
			},
			DoUpdates: clause.AssignmentColumns(recurringSeriesUpsertColumns),
		}).CreateInBatches(series, upsertBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert recurring series: %w", err)
	}

	return len(series), nil
}

// GetByUserID lists a user's series, soonest due first and undated series last
func (r *recurringSeriesRepository) GetByUserID(userID uuid.UUID, filters models.RecurringSeriesFilters) ([]models.RecurringSeries, error) {
	var series []models.RecurringSeries

	query := r.db.Where("user_id = ?", userID)
	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if filters.SubscriptionsOnly {
		query = query.Where("is_subscription = ?", true)
	}
	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.
		Order("CASE WHEN next_due_date IS NULL THEN 1 ELSE 0 END").
		Order("next_due_date ASC").
		Order("normalized_name ASC").
		Find(&series).Error; err != nil {
		return nil, fmt.Errorf("failed to get recurring series: %w", err)
	}

	return series, nil
}
