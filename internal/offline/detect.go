package offline

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountNamespace derives stable ids for account labels that are not UUIDs
var accountNamespace = uuid.MustParse("0b6f4c52-6a0e-4f57-8d0c-1f2a9e7c3d58")

// Result is the outcome of an offline detection run
type Result struct {
	Rows         []SeriesRow
	Transactions int
	Skipped      int
}

// Pipeline runs normalization, categorization, detection and projection over CSV rows
// without a database or provider
type Pipeline struct {
	categorizer services.CategoryServiceInterface
	detector    services.RecurringDetectorInterface
	logger      *slog.Logger
}

// NewPipeline creates an offline pipeline over the given keyword data
func NewPipeline(keywords *models.KeywordConfig, threshold decimal.Decimal, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		categorizer: services.NewCategoryService(keywords),
		detector:    services.NewRecurringDetector(keywords, threshold),
		logger:      logger,
	}
}

// Run detects recurring series in rows and projects their next due dates from now.
// Malformed rows are skipped and counted.
func (p *Pipeline) Run(ctx context.Context, rows []TransactionRow, now time.Time) *Result {
	result := &Result{}
	accountLabels := make(map[uuid.UUID]string)
	transactions := make([]models.Transaction, 0, len(rows))

	for i, row := range rows {
		accountID := accountIDFor(row.AccountID)
		accountLabels[accountID] = row.AccountID

		txn, err := services.NormalizeTransaction(uuid.Nil, accountID, toProviderTransaction(row))
		if err != nil {
			// line numbers count the header row
			p.logger.WarnContext(ctx, "skipping malformed row",
				slog.Int("line", i+2),
				slog.String("reason", err.Error()),
			)
			result.Skipped++
			continue
		}
		transactions = append(transactions, *txn)
	}
	result.Transactions = len(transactions)

	series := p.detector.Detect(uuid.Nil, transactions)
	services.ProjectSeries(series, now)
	series = services.DedupeSeries(series)

	result.Rows = make([]SeriesRow, 0, len(series))
	for _, s := range series {
		result.Rows = append(result.Rows, newSeriesRow(s, accountLabels[s.AccountID], p.seriesCategory(s)))
	}
	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].NextDueDate < result.Rows[j].NextDueDate
	})

	return result
}

// seriesCategory prefers the provider category of the latest occurrence, then the keyword rules
func (p *Pipeline) seriesCategory(series *models.RecurringSeries) string {
	if leaf := series.Category.Leaf(); leaf != "" {
		return leaf
	}
	return p.categorizer.Categorize(series.Name, series.MerchantName).Category
}

func accountIDFor(label string) uuid.UUID {
	label = strings.TrimSpace(label)
	if id, err := uuid.Parse(label); err == nil {
		return id
	}
	return uuid.NewSHA1(accountNamespace, []byte(label))
}

func toProviderTransaction(row TransactionRow) dto.ProviderTransaction {
	raw := dto.ProviderTransaction{
		TransactionID: row.ID,
		AccountID:     row.AccountID,
		Name:          row.Name,
		Category:      splitCategory(row.Category),
	}
	if amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount)); err == nil {
		raw.Amount = &amount
	}
	if date := strings.TrimSpace(row.Date); date != "" {
		raw.Date = &date
	}
	if merchant := strings.TrimSpace(row.MerchantName); merchant != "" {
		raw.MerchantName = &merchant
	}
	if pending, err := strconv.ParseBool(strings.TrimSpace(row.Pending)); err == nil {
		raw.Pending = pending
	}
	return raw
}
