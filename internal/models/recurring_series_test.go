package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMerchantKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Netflix", "netflix"},
		{"NETFLIX.COM", "netflixcom"},
		{"Uber *Eats 8005928996", "ubereats8005928996"},
		{"  Café Olé  ", "caféolé"},
		{"***", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMerchantKey(tt.input))
		})
	}
}

func TestSeriesID_Deterministic(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	first := SeriesID(userID, "netflix", accountID)

	assert.Equal(t, first, SeriesID(userID, "netflix", accountID))
	assert.NotEqual(t, first, SeriesID(userID, "spotify", accountID))
	assert.NotEqual(t, first, SeriesID(userID, "netflix", uuid.New()))
	assert.NotEqual(t, first, SeriesID(uuid.New(), "netflix", accountID))
}

func TestRecurringSeries_BeforeCreate(t *testing.T) {
	series := &RecurringSeries{
		UserID:          uuid.New(),
		AccountID:       uuid.New(),
		NormalizedName:  "netflix",
		TransactionType: TransactionTypeExpense,
	}

	err := series.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, SeriesID(series.UserID, "netflix", series.AccountID), series.ID)
	assert.False(t, series.CreatedAt.IsZero())
	assert.Equal(t, series.UserID.String()+"|netflix|"+series.AccountID.String(), series.NaturalKey())
}

func TestRecurringSeries_Validate(t *testing.T) {
	tests := []struct {
		name    string
		series  RecurringSeries
		wantErr bool
	}{
		{"valid income", RecurringSeries{UserID: uuid.New(), AccountID: uuid.New(), NormalizedName: "payroll", TransactionType: TransactionTypeIncome}, false},
		{"missing account", RecurringSeries{UserID: uuid.New(), NormalizedName: "payroll", TransactionType: TransactionTypeIncome}, true},
		{"missing name", RecurringSeries{UserID: uuid.New(), AccountID: uuid.New(), TransactionType: TransactionTypeExpense}, true},
		{"transfer", RecurringSeries{UserID: uuid.New(), AccountID: uuid.New(), NormalizedName: "move", TransactionType: TransactionTypeTransfer}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecurringSeries_DisplayName(t *testing.T) {
	assert.Equal(t, "Netflix", (&RecurringSeries{Name: "NETFLIX.COM", MerchantName: strPtr("Netflix")}).DisplayName())
	assert.Equal(t, "NETFLIX.COM", (&RecurringSeries{Name: "NETFLIX.COM"}).DisplayName())
}

func TestFrequencyForGap(t *testing.T) {
	tests := []struct {
		gap  float64
		want string
	}{
		{-3, FrequencyWeekly},
		{0, FrequencyWeekly},
		{7, FrequencyWeekly},
		{9.99, FrequencyWeekly},
		{10, FrequencyBiweekly},
		{19.5, FrequencyBiweekly},
		{20, FrequencyMonthly},
		{30.4, FrequencyMonthly},
		{45, FrequencyQuarterly},
		{99.9, FrequencyQuarterly},
		{100, FrequencyYearly},
		{365, FrequencyYearly},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FrequencyForGap(tt.gap), "gap %v", tt.gap)
	}
}

func TestNormalizeFrequency(t *testing.T) {
	assert.Equal(t, FrequencyMonthly, NormalizeFrequency(" MONTHLY "))
	assert.Equal(t, FrequencyApproximatelyMonthly, NormalizeFrequency("APPROXIMATELY_MONTHLY"))
	assert.Equal(t, FrequencyUnknown, NormalizeFrequency(""))
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", CircuitBreakerState(0).String())
	assert.Equal(t, "open", CircuitBreakerState(1).String())
	assert.Equal(t, "half_open", CircuitBreakerState(2).String())
	assert.Equal(t, "unknown", CircuitBreakerState(7).String())
}
