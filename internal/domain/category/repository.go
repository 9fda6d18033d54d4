package category

import "context"

// Repository is lookup-only from the sync engine's perspective. Inactive
// categories are excluded from name resolution.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*Category, error)
	// FindActiveByName matches case-insensitively among active categories
	// and returns (nil, nil) when nothing matches.
	FindActiveByName(ctx context.Context, name string) (*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
}
