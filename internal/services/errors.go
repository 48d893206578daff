package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrTransactionNil     = errors.New("transaction cannot be nil")
	ErrCategoryNotChanged = errors.New("category was not changed")
	ErrNoLinkedAccounts   = errors.New("user has no linked accounts")
)

// MalformedRecordError rejects a single provider record that lacks a field every
// downstream step depends on. Callers skip the record and keep processing the batch.
type MalformedRecordError struct {
	RecordID string
	Field    string
	Reason   string
}

func (e *MalformedRecordError) Error() string {
	if e.RecordID == "" {
		return fmt.Sprintf("malformed record: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed record %s: %s %s", e.RecordID, e.Field, e.Reason)
}

// ProviderUnavailableError aborts processing of one linked account for the current cycle
type ProviderUnavailableError struct {
	AccountID string
	Op        string
	Err       error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("provider unavailable for account %s during %s: %v", e.AccountID, e.Op, e.Err)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Err
}

// RateLimitedError reports that a manual sync was requested inside the cooldown window
type RateLimitedError struct {
	RetryAfter   time.Duration
	LastSyncedAt time.Time
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("sync cooldown active, retry in %s", e.RetryAfter.Round(time.Second))
}
