package offline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"finance-dashboard/internal/models"

	"github.com/gocarina/gocsv"
)

const categorySeparator = ">"

// TransactionRow is one input line of the detect command
type TransactionRow struct {
	ID           string `csv:"id"`
	AccountID    string `csv:"account_id"`
	Date         string `csv:"date"`
	Name         string `csv:"name"`
	MerchantName string `csv:"merchant_name"`
	Amount       string `csv:"amount"`
	Category     string `csv:"category"`
	Pending      string `csv:"pending"`
}

// SeriesRow is one output line of the detect command
type SeriesRow struct {
	AccountID           string `csv:"account_id"`
	Name                string `csv:"name"`
	MerchantName        string `csv:"merchant_name"`
	TransactionType     string `csv:"transaction_type"`
	Frequency           string `csv:"frequency"`
	ExpectedAmount      string `csv:"expected_amount"`
	AverageAmount       string `csv:"average_amount"`
	TotalOccurrences    int    `csv:"total_occurrences"`
	StartDate           string `csv:"start_date"`
	LastTransactionDate string `csv:"last_transaction_date"`
	NextDueDate         string `csv:"next_due_date"`
	IsSubscription      bool   `csv:"is_subscription"`
	Category            string `csv:"category"`
}

// ReadTransactions parses a transactions CSV with a header row. Columns may appear in any order.
func ReadTransactions(r io.Reader) ([]TransactionRow, error) {
	var rows []TransactionRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read transactions csv: %w", err)
	}
	return rows, nil
}

// WriteSeries writes the detected series with a header row
func WriteSeries(w io.Writer, rows []SeriesRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write series csv: %w", err)
	}
	return nil
}

// splitCategory turns "Food and Drink > Restaurants" into a category path
func splitCategory(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, categorySeparator)
	path := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			path = append(path, part)
		}
	}
	return path
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format("2006-01-02")
}

func newSeriesRow(series *models.RecurringSeries, accountID, category string) SeriesRow {
	row := SeriesRow{
		AccountID:           accountID,
		Name:                series.Name,
		TransactionType:     series.TransactionType,
		Frequency:           series.Frequency,
		ExpectedAmount:      series.ExpectedAmount.StringFixed(2),
		AverageAmount:       series.AverageAmount.StringFixed(2),
		TotalOccurrences:    series.TotalOccurrences,
		StartDate:           formatDate(series.StartDate),
		LastTransactionDate: formatDate(series.LastTransactionDate),
		NextDueDate:         formatDate(series.NextDueDate),
		IsSubscription:      series.IsSubscription,
		Category:            category,
	}
	if series.MerchantName != nil {
		row.MerchantName = *series.MerchantName
	}
	return row
}
