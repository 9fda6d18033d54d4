package services

import (
	"context"
	"time"

	"dormdesk/internal/domain/issue"
	"dormdesk/internal/shared/biztime"
)

// recentDuplicateWindow is how far back the recency+identity strategy looks.
// A student re-submitting the same complaint before triage lands inside it.
const recentDuplicateWindow = 7 * 24 * time.Hour

// DuplicateChecker decides whether a normalized submission already has a
// ticket. Two independent strategies, either one sufficient:
//
//  1. exact external timestamp + email (only when the timestamp parsed);
//  2. same email, hall, room and category on a still-open issue created
//     within the last 7 days.
//
// Strategy 2 knowingly risks collapsing two genuine issues in the same room
// and category within a week; duplicate spam tickets are the worse failure.
type DuplicateChecker struct {
	issues issue.Repository
	now    func() time.Time
}

func NewDuplicateChecker(issues issue.Repository) *DuplicateChecker {
	return &DuplicateChecker{
		issues: issues,
		now:    biztime.NowUTC,
	}
}

func (d *DuplicateChecker) IsDuplicate(
	ctx context.Context,
	submittedAt *time.Time,
	email string,
	hallID uint,
	roomNumber string,
	categoryID uint,
) (bool, error) {
	if email == "" {
		return false, nil
	}

	if submittedAt != nil {
		exists, err := d.issues.ExistsBySubmission(ctx, *submittedAt, email)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}

	if hallID != 0 && roomNumber != "" && categoryID != 0 {
		cutoff := d.now().Add(-recentDuplicateWindow)
		exists, err := d.issues.ExistsRecentOpen(ctx, email, hallID, roomNumber, categoryID, cutoff)
		if err != nil {
			return false, err
		}
		if exists {
			return true, nil
		}
	}

	return false, nil
}
