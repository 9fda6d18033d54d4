package audit

import "context"

// Repository appends audit entries. Entries are never updated or deleted.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	ListByIssue(ctx context.Context, issueID uint) ([]*Entry, error)
}
