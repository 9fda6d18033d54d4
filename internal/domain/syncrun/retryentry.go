package syncrun

import (
	"fmt"
	"time"
)

// RetryEntry is a pending asset upload for an issue whose image processing
// failed. At most one entry exists per issue; repeated failures update the
// entry in place.
type RetryEntry struct {
	id              uint
	issueID         uint
	sourceURL       string
	attempts        int
	lastError       *string
	lastAttemptedAt *time.Time
	createdAt       time.Time
}

func NewRetryEntry(issueID uint, sourceURL string, lastError string) (*RetryEntry, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if sourceURL == "" {
		return nil, fmt.Errorf("source URL is required")
	}
	now := time.Now().UTC()
	return &RetryEntry{
		issueID:         issueID,
		sourceURL:       sourceURL,
		lastError:       &lastError,
		lastAttemptedAt: &now,
		createdAt:       now,
	}, nil
}

func ReconstructRetryEntry(
	id uint,
	issueID uint,
	sourceURL string,
	attempts int,
	lastError *string,
	lastAttemptedAt *time.Time,
	createdAt time.Time,
) (*RetryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("retry entry ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	return &RetryEntry{
		id:              id,
		issueID:         issueID,
		sourceURL:       sourceURL,
		attempts:        attempts,
		lastError:       lastError,
		lastAttemptedAt: lastAttemptedAt,
		createdAt:       createdAt,
	}, nil
}

func (e *RetryEntry) ID() uint                    { return e.id }
func (e *RetryEntry) IssueID() uint               { return e.issueID }
func (e *RetryEntry) SourceURL() string           { return e.sourceURL }
func (e *RetryEntry) Attempts() int               { return e.attempts }
func (e *RetryEntry) LastError() *string          { return e.lastError }
func (e *RetryEntry) LastAttemptedAt() *time.Time { return e.lastAttemptedAt }
func (e *RetryEntry) CreatedAt() time.Time        { return e.createdAt }

// RecordFailure increments the attempt counter and stores the latest error.
// The entry stays queued for the next drain cycle.
func (e *RetryEntry) RecordFailure(errMsg string) {
	now := time.Now().UTC()
	e.attempts++
	e.lastError = &errMsg
	e.lastAttemptedAt = &now
}
