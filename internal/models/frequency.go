package models

import "strings"

// Frequencies produced by the pattern detector
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiweekly  = "biweekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// Provider frequency strings, after lower-casing
const (
	FrequencyApproximatelyMonthly = "approximately_monthly"
	FrequencyAnnually             = "annually"
	FrequencyUnknown              = "unknown"
)

// NormalizeFrequency lower-cases and trims a provider frequency string
func NormalizeFrequency(frequency string) string {
	normalized := strings.ToLower(strings.TrimSpace(frequency))
	if normalized == "" {
		return FrequencyUnknown
	}
	return normalized
}

// FrequencyForGap maps an average gap in days to a frequency bucket.
// Lower bounds are inclusive; zero and negative gaps fall into the weekly bucket.
func FrequencyForGap(averageGapDays float64) string {
	switch {
	case averageGapDays < 10:
		return FrequencyWeekly
	case averageGapDays < 20:
		return FrequencyBiweekly
	case averageGapDays < 45:
		return FrequencyMonthly
	case averageGapDays < 100:
		return FrequencyQuarterly
	default:
		return FrequencyYearly
	}
}
