package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"finance-dashboard/internal/dto"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

var sandboxSubscriptions = []struct {
	name   string
	amount string
	day    int
}{
	{"Netflix", "15.49", 5},
	{"Spotify", "10.99", 12},
	{"Planet Fitness", "24.99", 1},
	{"City Power & Light", "142.37", 20},
}

var sandboxEpoch = time.Date(2020, time.January, 3, 0, 0, 0, 0, time.UTC)

var sandboxCategories = [][]string{
	{"Food and Drink", "Restaurants"},
	{"Shops", "Supermarkets and Groceries"},
	{"Travel", "Taxi"},
	{"Shops"},
	nil,
}

// SandboxAggregatorClient fabricates a stable transaction history per access token for local runs.
// It never reports recurring streams, so recurring sync always falls back to local detection.
type SandboxAggregatorClient struct{}

func NewSandboxAggregatorClient() AggregatorClientInterface {
	return &SandboxAggregatorClient{}
}

// GetTransactions returns the generated history inside [start, end]
func (c *SandboxAggregatorClient) GetTransactions(ctx context.Context, accessToken, providerAccountID string, start, end time.Time) ([]dto.ProviderTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := sandboxSeed(accessToken, providerAccountID)
	faker := gofakeit.New(seed)
	start, end = toDate(start), toDate(end)

	var transactions []dto.ProviderTransaction
	add := func(date time.Time, name string, merchant *string, amount decimal.Decimal, category []string) {
		if date.Before(start) || date.After(end) {
			return
		}
		day := date.Format(providerDateLayout)
		transactions = append(transactions, dto.ProviderTransaction{
			TransactionID: fmt.Sprintf("sbx-%016x", sandboxSeed(providerAccountID, day+"|"+name)),
			AccountID:     providerAccountID,
			Amount:        &amount,
			Date:          &day,
			Name:          name,
			MerchantName:  merchant,
			Category:      category,
		})
	}

	for _, sub := range sandboxSubscriptions {
		name := sub.name
		amount := decimal.RequireFromString(sub.amount)
		for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !month.After(end); month = month.AddDate(0, 1, 0) {
			day := sub.day
			if last := daysInMonth(month); day > last {
				day = last
			}
			add(time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC), name, &name, amount, nil)
		}
	}

	// paydays and spend are anchored to absolute dates so overlapping windows agree
	employer := faker.Company()
	paycheck := decimal.NewFromFloat(faker.Float64Range(1800, 3200)).Round(2).Neg()
	payOffset := faker.Number(0, 13)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		epochDay := daysBetween(sandboxEpoch, date)
		if (epochDay-payOffset)%14 == 0 {
			add(date, "PAYROLL "+employer, nil, paycheck, []string{"Transfer", "Payroll"})
		}

		dayFaker := gofakeit.New(seed ^ uint64(epochDay))
		if dayFaker.Number(0, 2) != 0 {
			continue
		}
		merchant := dayFaker.Company()
		amount := decimal.NewFromFloat(dayFaker.Price(3, 180)).Round(2)
		add(date, merchant, &merchant, amount, sandboxCategories[dayFaker.Number(0, len(sandboxCategories)-1)])
	}

	return transactions, nil
}

// GetRecurringStreams always returns an empty response
func (c *SandboxAggregatorClient) GetRecurringStreams(ctx context.Context, accessToken, providerAccountID string) (*dto.ProviderRecurringResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &dto.ProviderRecurringResponse{}, nil
}

func sandboxSeed(accessToken, providerAccountID string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(accessToken))
	h.Write([]byte{0})
	h.Write([]byte(providerAccountID))
	return h.Sum64()
}
