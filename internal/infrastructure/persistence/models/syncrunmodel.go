package models

// SyncRunModel is the persistence model for the reconciliation run ledger.
type SyncRunModel struct {
	ID            uint   `gorm:"primaryKey"`
	Kind          string `gorm:"size:20;not null"`
	Status        string `gorm:"size:20;not null;index:idx_status_started,priority:1"`
	StartedAt     int64  `gorm:"not null;index;index:idx_status_started,priority:2"`
	CompletedAt   *int64
	RowsProcessed int    `gorm:"not null;default:0"`
	RowsCreated   int    `gorm:"not null;default:0"`
	RowsSkipped   int    `gorm:"not null;default:0"`
	RetryChecked  int    `gorm:"not null;default:0"`
	RetryUploaded int    `gorm:"not null;default:0"`
	RetryFailed   int    `gorm:"not null;default:0"`
	Errors        string `gorm:"type:json"`
	// CURSOR is reserved in MySQL, so the cursor persists under an explicit
	// column name.
	Cursor int `gorm:"column:last_synced_row_index;not null;default:0"`
}

func (SyncRunModel) TableName() string {
	return "sync_runs"
}

// RetryEntryModel is the persistence model for deferred asset uploads. The
// unique index on IssueID enforces at most one pending entry per issue.
type RetryEntryModel struct {
	ID              uint    `gorm:"primaryKey"`
	IssueID         uint    `gorm:"uniqueIndex;not null"`
	SourceURL       string  `gorm:"size:1024;not null"`
	Attempts        int     `gorm:"not null;default:0"`
	LastError       *string `gorm:"size:1000"`
	LastAttemptedAt *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (RetryEntryModel) TableName() string {
	return "asset_retry_queue"
}
