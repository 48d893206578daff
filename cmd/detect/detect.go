// Package detect runs recurring-series detection over a transactions CSV
package detect

import (
	"fmt"
	"io"
	"os"
	"time"

	"finance-dashboard/cmd/root"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/offline"
	"finance-dashboard/internal/services"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	Input        string
	Output       string
	Now          string
	KeywordsFile string
	Threshold    string
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect recurring series in a transactions CSV",
	Long: `Detect recurring series in a CSV of transactions with the columns
id,account_id,date,name,merchant_name,amount,category[,pending] and write one row per series
with its projected next due date. Positive amounts are money leaving the account.
Rows missing an id, an amount or a valid date are skipped with a warning.`,
	RunE: detectFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Input, "input", "i", "", "Input transactions CSV")
	Cmd.Flags().StringVarP(&Output, "output", "o", "", "Output series CSV (default stdout)")
	Cmd.Flags().StringVarP(&Now, "now", "n", "", "Reference date YYYY-MM-DD for due-date projection (default today, UTC)")
	Cmd.Flags().StringVarP(&KeywordsFile, "keywords", "k", os.Getenv("KEYWORDS_FILE"), "YAML keyword rules overriding the built-in set")
	Cmd.Flags().StringVarP(&Threshold, "threshold", "t", "100", "Average amount below which a series counts as a subscription")
	_ = Cmd.MarkFlagRequired("input")
}

func detectFunc(cmd *cobra.Command, args []string) error {
	now, err := referenceDate(Now)
	if err != nil {
		return err
	}

	threshold, err := decimal.NewFromString(Threshold)
	if err != nil {
		return fmt.Errorf("invalid --threshold %q: %w", Threshold, err)
	}

	keywords, err := loadKeywords(KeywordsFile)
	if err != nil {
		return err
	}

	in, err := os.Open(Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	rows, err := offline.ReadTransactions(in)
	if err != nil {
		return err
	}

	result := offline.NewPipeline(keywords, threshold, root.Log).Run(cmd.Context(), rows, now)
	root.Log.Info("detection finished",
		"transactions", result.Transactions,
		"skipped", result.Skipped,
		"series", len(result.Rows),
	)

	var out io.Writer = cmd.OutOrStdout()
	if Output != "" {
		file, err := os.Create(Output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer file.Close()
		out = file
	}

	return offline.WriteSeries(out, result.Rows)
}

func referenceDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	now, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: expected YYYY-MM-DD", value)
	}
	return now, nil
}

func loadKeywords(path string) (*models.KeywordConfig, error) {
	if path == "" {
		return services.DefaultKeywordConfig(), nil
	}
	return services.LoadKeywordConfig(path)
}
