// Package audit records immutable per-issue action history.
package audit

import (
	"fmt"
	"time"
)

const (
	ActionCreated      = "created"
	ActionStatusChange = "status_change"
)

// Entry is one immutable record of an issue-affecting action. A nil actor
// marks a system action such as sync-driven creation.
type Entry struct {
	id        uint
	issueID   uint
	actorID   *uint
	action    string
	oldValue  *string
	newValue  *string
	details   *string
	createdAt time.Time
}

func NewEntry(issueID uint, actorID *uint, action string, oldValue, newValue, details *string) (*Entry, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	return &Entry{
		issueID:   issueID,
		actorID:   actorID,
		action:    action,
		oldValue:  oldValue,
		newValue:  newValue,
		details:   details,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructEntry(
	id uint,
	issueID uint,
	actorID *uint,
	action string,
	oldValue, newValue, details *string,
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("audit entry ID cannot be zero")
	}
	return &Entry{
		id:        id,
		issueID:   issueID,
		actorID:   actorID,
		action:    action,
		oldValue:  oldValue,
		newValue:  newValue,
		details:   details,
		createdAt: createdAt,
	}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) IssueID() uint        { return e.issueID }
func (e *Entry) ActorID() *uint       { return e.actorID }
func (e *Entry) Action() string       { return e.action }
func (e *Entry) OldValue() *string    { return e.oldValue }
func (e *Entry) NewValue() *string    { return e.newValue }
func (e *Entry) Details() *string     { return e.details }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
