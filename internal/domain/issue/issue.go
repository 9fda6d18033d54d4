package issue

import (
	"fmt"
	"strings"
	"time"

	vo "dormdesk/internal/domain/issue/valueobjects"
)

// Issue is a repair request ingested from the external submission feed.
// It is created only by the sync engine; staff mutate its status afterwards.
type Issue struct {
	id          uint
	submittedAt *time.Time
	email       string
	name        *string
	hallID      uint
	roomNumber  string
	categoryID  uint
	description *string
	imageURL    *string
	status      vo.Status
	resolvedAt  *time.Time
	resolvedBy  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSubmittedIssue builds a pending issue from a normalized form submission.
// The submission timestamp may be nil since source timestamps are unreliable.
func NewSubmittedIssue(
	submittedAt *time.Time,
	email string,
	name *string,
	hallID uint,
	roomNumber string,
	categoryID uint,
	description *string,
) (*Issue, error) {
	email = strings.TrimSpace(email)
	roomNumber = strings.TrimSpace(roomNumber)

	if email == "" {
		return nil, fmt.Errorf("reporter email is required")
	}
	if hallID == 0 {
		return nil, fmt.Errorf("hall ID is required")
	}
	if roomNumber == "" {
		return nil, fmt.Errorf("room number is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}

	now := time.Now().UTC()
	return &Issue{
		submittedAt: submittedAt,
		email:       email,
		name:        name,
		hallID:      hallID,
		roomNumber:  roomNumber,
		categoryID:  categoryID,
		description: description,
		status:      vo.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructIssue rebuilds an issue from persistence.
func ReconstructIssue(
	id uint,
	submittedAt *time.Time,
	email string,
	name *string,
	hallID uint,
	roomNumber string,
	categoryID uint,
	description *string,
	imageURL *string,
	status vo.Status,
	resolvedAt *time.Time,
	resolvedBy *uint,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("reporter email is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %q", status)
	}

	return &Issue{
		id:          id,
		submittedAt: submittedAt,
		email:       email,
		name:        name,
		hallID:      hallID,
		roomNumber:  roomNumber,
		categoryID:  categoryID,
		description: description,
		imageURL:    imageURL,
		status:      status,
		resolvedAt:  resolvedAt,
		resolvedBy:  resolvedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (i *Issue) ID() uint                { return i.id }
func (i *Issue) SubmittedAt() *time.Time { return i.submittedAt }
func (i *Issue) Email() string           { return i.email }
func (i *Issue) Name() *string           { return i.name }
func (i *Issue) HallID() uint            { return i.hallID }
func (i *Issue) RoomNumber() string      { return i.roomNumber }
func (i *Issue) CategoryID() uint        { return i.categoryID }
func (i *Issue) Description() *string    { return i.description }
func (i *Issue) ImageURL() *string       { return i.imageURL }
func (i *Issue) Status() vo.Status       { return i.status }
func (i *Issue) ResolvedAt() *time.Time  { return i.resolvedAt }
func (i *Issue) ResolvedBy() *uint       { return i.resolvedBy }
func (i *Issue) CreatedAt() time.Time    { return i.createdAt }
func (i *Issue) UpdatedAt() time.Time    { return i.updatedAt }

// SetID assigns the identity generated by persistence. Asset storage keys off
// the issue identity, so the ID must be known before image processing.
func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

// AttachImage records the stored asset URL after a successful upload.
func (i *Issue) AttachImage(url string) error {
	if url == "" {
		return fmt.Errorf("image URL cannot be empty")
	}
	i.imageURL = &url
	i.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus moves the issue to the given status. Transitions are allowed
// in both directions. Moving to done stamps the resolution fields; moving
// away from done clears them.
func (i *Issue) ChangeStatus(newStatus vo.Status, actorID *uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %q", newStatus)
	}
	now := time.Now().UTC()

	if newStatus == vo.StatusDone && i.status != vo.StatusDone {
		i.resolvedAt = &now
		i.resolvedBy = actorID
	}
	if newStatus != vo.StatusDone && i.status == vo.StatusDone {
		i.resolvedAt = nil
		i.resolvedBy = nil
	}

	i.status = newStatus
	i.updatedAt = now
	return nil
}
