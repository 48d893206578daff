package dto

// AccountFailure describes why one linked account could not be processed
type AccountFailure struct {
	AccountID string `json:"account_id"`
	Reason    string `json:"reason"`
}

// SyncSummary reports the outcome of a transaction sync across a user's linked accounts.
// Partial success is still success: failures are listed alongside the synced counts.
type SyncSummary struct {
	AccountsTotal      int              `json:"accounts_total"`
	AccountsSynced     int              `json:"accounts_synced"`
	TransactionsSynced int              `json:"transactions_synced"`
	RecordsSkipped     int              `json:"records_skipped"`
	Failures           []AccountFailure `json:"failures"`
}

// RecurringSyncReport reports the outcome of a recurring sync
type RecurringSyncReport struct {
	AccountsProcessed int              `json:"accounts_processed"`
	ProviderAccounts  int              `json:"provider_accounts"`
	DetectedAccounts  int              `json:"detected_accounts"`
	SeriesUpserted    int              `json:"series_upserted"`
	Failures          []AccountFailure `json:"failures"`
}

// SyncNowResponse is returned by the manual sync endpoint
type SyncNowResponse struct {
	Transactions *SyncSummary         `json:"transactions"`
	Recurring    *RecurringSyncReport `json:"recurring"`
}

// HealthResponse reports database reachability and the provider breaker state.
// Status is "degraded" while the breaker is open: syncs fail fast but stored data is served.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Provider string `json:"provider"`
	Time     string `json:"time"`
}
