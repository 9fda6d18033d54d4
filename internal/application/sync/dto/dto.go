package dto

import "time"

// RetrySummary reports the retry-queue drain performed at the start of a run.
type RetrySummary struct {
	EntriesChecked int      `json:"entries_checked"`
	ImagesUploaded int      `json:"images_uploaded"`
	Errors         []string `json:"errors,omitempty"`
	ErrorsCount    int      `json:"errors_count"`
	PendingBefore  int64    `json:"pending_before"`
	PendingAfter   int64    `json:"pending_after"`
}

// RunSyncResult is the full run summary returned to the trigger caller.
type RunSyncResult struct {
	Status             string       `json:"status"`
	RowsProcessed      int          `json:"rows_processed"`
	RowsCreated        int          `json:"rows_created"`
	RowsSkipped        int          `json:"rows_skipped"`
	Errors             []string     `json:"errors"`
	LastSyncedRowIndex int          `json:"last_synced_row_index"`
	RetrySummary       RetrySummary `json:"retry_summary"`
}

// SyncRunDTO is one ledger record shaped for API responses.
type SyncRunDTO struct {
	ID                 uint       `json:"id"`
	Kind               string     `json:"kind"`
	Status             string     `json:"status"`
	StartedAt          time.Time  `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	RowsProcessed      int        `json:"rows_processed"`
	RowsCreated        int        `json:"rows_created"`
	RowsSkipped        int        `json:"rows_skipped"`
	RetryChecked       int        `json:"retry_entries_checked"`
	RetryUploaded      int        `json:"retry_images_uploaded"`
	RetryFailed        int        `json:"retry_errors"`
	Errors             []string   `json:"errors,omitempty"`
	LastSyncedRowIndex int        `json:"last_synced_row_index"`
}
