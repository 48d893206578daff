package services

import (
	"time"

	"finance-dashboard/internal/models"
)

const hoursPerDay = 24

// dueDateStep is the increment of one frequency: a fixed number of days or calendar months
type dueDateStep struct {
	days   int
	months int
}

const fallbackStepDays = 30

func stepForFrequency(frequency string) dueDateStep {
	switch models.NormalizeFrequency(frequency) {
	case models.FrequencyWeekly:
		return dueDateStep{days: 7}
	case models.FrequencyBiweekly:
		return dueDateStep{days: 14}
	case models.FrequencyMonthly, models.FrequencyApproximatelyMonthly:
		return dueDateStep{months: 1}
	case models.FrequencyQuarterly:
		return dueDateStep{months: 3}
	case models.FrequencyYearly, models.FrequencyAnnually:
		return dueDateStep{months: 12}
	default:
		return dueDateStep{days: fallbackStepDays}
	}
}

// ProjectNextDueDate rolls last forward by the frequency's increment until it reaches today
// (the UTC calendar date of now). A last date already after today is returned unchanged and
// a nil last date yields nil. Month and year increments are counted from last and clamp to
// the end of shorter months, so a Jan 31 anchor gives Feb 29, Mar 31, Apr 30.
func ProjectNextDueDate(last *time.Time, frequency string, now time.Time) *time.Time {
	if last == nil {
		return nil
	}

	anchor := toDate(*last)
	today := toDate(now)
	if anchor.After(today) {
		return &anchor
	}

	step := stepForFrequency(frequency)

	if step.days > 0 {
		elapsed := daysBetween(anchor, today)
		k := (elapsed + step.days - 1) / step.days
		if k < 1 {
			k = 1
		}
		next := anchor.AddDate(0, 0, k*step.days)
		return &next
	}

	elapsedMonths := (today.Year()-anchor.Year())*12 + int(today.Month()-anchor.Month())
	k := elapsedMonths / step.months
	if k < 1 {
		k = 1
	}
	next := addMonthsClamped(anchor, k*step.months)
	for next.Before(today) {
		k++
		next = addMonthsClamped(anchor, k*step.months)
	}
	return &next
}

// addMonthsClamped adds calendar months, landing on the last day of the target month
// when the anchor day does not exist there
func addMonthsClamped(anchor time.Time, months int) time.Time {
	firstOfTarget := time.Date(anchor.Year(), anchor.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := anchor.Day()
	if last := daysInMonth(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// toDate truncates a timestamp to its UTC calendar date
func toDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(toDate(to).Sub(toDate(from)).Hours() / hoursPerDay)
}
