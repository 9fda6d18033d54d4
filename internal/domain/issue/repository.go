package issue

import (
	"context"
	"time"
)

// Filter narrows issue listings. Zero values mean "no constraint".
type Filter struct {
	HallID     *uint
	CategoryID *uint
	Status     *string
	Email      *string
	Page       int
	PageSize   int
}

// Repository persists issues. Duplicate-detection queries live here because
// the matching keys are repository concerns, not aggregate behavior.
type Repository interface {
	Save(ctx context.Context, i *Issue) error
	Update(ctx context.Context, i *Issue) error
	FindByID(ctx context.Context, id uint) (*Issue, error)
	List(ctx context.Context, filter Filter) ([]*Issue, int64, error)

	// ExistsBySubmission reports whether an issue with this exact external
	// submission timestamp and reporter email already exists.
	ExistsBySubmission(ctx context.Context, submittedAt time.Time, email string) (bool, error)

	// ExistsRecentOpen reports whether an open (pending or in-progress)
	// issue with the same reporter, hall, room and category was created at
	// or after the cutoff.
	ExistsRecentOpen(ctx context.Context, email string, hallID uint, roomNumber string, categoryID uint, cutoff time.Time) (bool, error)
}
