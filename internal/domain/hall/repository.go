package hall

import "context"

// Repository is lookup-only from the sync engine's perspective: resolution
// never creates halls, so unmatched names skip the row.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*Hall, error)
	// FindByName matches case-insensitively and returns (nil, nil) when no
	// hall carries the name.
	FindByName(ctx context.Context, name string) (*Hall, error)
	ListAll(ctx context.Context) ([]*Hall, error)
}
