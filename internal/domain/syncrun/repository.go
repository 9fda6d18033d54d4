package syncrun

import "context"

// Repository persists the run ledger. Runs are append-only: Update is only
// legal for the in-flight run that created the record.
type Repository interface {
	Create(ctx context.Context, run *Run) error
	Update(ctx context.Context, run *Run) error
	// LastSuccessful returns the most recent run with status success, or
	// (nil, nil) when none exists. Its cursor is authoritative for resume.
	LastSuccessful(ctx context.Context) (*Run, error)
	// Latest returns the most recently started run regardless of status,
	// or (nil, nil) when the ledger is empty.
	Latest(ctx context.Context) (*Run, error)
	List(ctx context.Context, page, pageSize int) ([]*Run, int64, error)
}

// RetryRepository persists the asset retry queue.
type RetryRepository interface {
	// Upsert creates the entry for the issue or, when one already exists,
	// overwrites its source URL, error and attempt timestamp in place.
	Upsert(ctx context.Context, issueID uint, sourceURL string, lastError string) error
	// ListOldest returns up to limit entries ordered by creation time.
	ListOldest(ctx context.Context, limit int) ([]*RetryEntry, error)
	Update(ctx context.Context, entry *RetryEntry) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
