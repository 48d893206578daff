package services

import (
	"sort"
	"strings"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const minSeriesOccurrences = 2

type recurringDetector struct {
	subscriptionKeywords  []string
	subscriptionThreshold decimal.Decimal
}

type groupKey struct {
	accountID       uuid.UUID
	transactionType string
	merchantKey     string
}

// NewRecurringDetector creates a pattern detector. Amounts below threshold are treated as
// likely subscriptions when no keyword matches.
func NewRecurringDetector(cfg *models.KeywordConfig, threshold decimal.Decimal) RecurringDetectorInterface {
	if cfg == nil {
		cfg = DefaultKeywordConfig()
	}
	return &recurringDetector{
		subscriptionKeywords:  normalizeKeywords(cfg.SubscriptionKeywords),
		subscriptionThreshold: threshold,
	}
}

// Detect groups a user's transactions by account, direction and normalized merchant key
// and emits one series per group of at least two settled transactions.
// Transfers and pending transactions never contribute. next_due_date is left unset.
func (d *recurringDetector) Detect(userID uuid.UUID, transactions []models.Transaction) []*models.RecurringSeries {
	groups := make(map[groupKey][]models.Transaction)
	for _, txn := range transactions {
		if txn.Pending {
			continue
		}
		transactionType := models.TransactionTypeForAmount(txn.Amount)
		if transactionType == models.TransactionTypeTransfer {
			continue
		}
		key := models.NormalizeMerchantKey(txn.DisplayName())
		if key == "" {
			continue
		}
		gk := groupKey{accountID: txn.AccountID, transactionType: transactionType, merchantKey: key}
		groups[gk] = append(groups[gk], txn)
	}

	series := make([]*models.RecurringSeries, 0, len(groups))
	for gk, members := range groups {
		if len(members) < minSeriesOccurrences {
			continue
		}
		series = append(series, d.buildSeries(userID, gk, members))
	}

	sort.Slice(series, func(i, j int) bool {
		if series[i].AccountID != series[j].AccountID {
			return series[i].AccountID.String() < series[j].AccountID.String()
		}
		if series[i].TransactionType != series[j].TransactionType {
			return series[i].TransactionType < series[j].TransactionType
		}
		return series[i].NormalizedName < series[j].NormalizedName
	})

	return series
}

func (d *recurringDetector) buildSeries(userID uuid.UUID, gk groupKey, members []models.Transaction) *models.RecurringSeries {
	sort.SliceStable(members, func(i, j int) bool {
		if !members[i].Date.Equal(members[j].Date) {
			return members[i].Date.Before(members[j].Date)
		}
		return members[i].ProviderTransactionID < members[j].ProviderTransactionID
	})

	total := decimal.Zero
	for _, txn := range members {
		total = total.Add(txn.AbsAmount())
	}
	count := len(members)
	average := total.DivRound(decimal.NewFromInt(int64(count)), 2)

	first := members[0]
	latest := members[count-1]
	startDate := toDate(first.Date)
	lastDate := toDate(latest.Date)

	// consecutive gaps telescope, so their mean is the span over the gap count
	averageGap := float64(daysBetween(startDate, lastDate)) / float64(count-1)

	return &models.RecurringSeries{
		UserID:              userID,
		AccountID:           gk.accountID,
		NormalizedName:      gk.merchantKey,
		Name:                latest.Name,
		MerchantName:        latest.MerchantName,
		ExpectedAmount:      latest.AbsAmount().Round(2),
		AverageAmount:       average,
		Frequency:           models.FrequencyForGap(averageGap),
		StartDate:           &startDate,
		LastTransactionDate: &lastDate,
		TransactionType:     gk.transactionType,
		IsSubscription:      d.ClassifySubscription(latest.DisplayName(), average),
		IsActive:            true,
		TotalOccurrences:    count,
		Category:            latest.Category,
		Source:              models.SeriesSourceDetected,
	}
}

// ClassifySubscription flags a series as a subscription when its name contains a known
// subscription keyword or its average amount is below the small-ticket threshold
func (d *recurringDetector) ClassifySubscription(name string, averageAmount decimal.Decimal) bool {
	lowerName := strings.ToLower(name)
	for _, keyword := range d.subscriptionKeywords {
		if strings.Contains(lowerName, keyword) {
			return true
		}
	}
	return averageAmount.Abs().LessThan(d.subscriptionThreshold)
}

// ProjectSeries fills next_due_date on every series from its last occurrence and frequency
func ProjectSeries(series []*models.RecurringSeries, now time.Time) {
	for _, s := range series {
		s.NextDueDate = ProjectNextDueDate(s.LastTransactionDate, s.Frequency, now)
	}
}
