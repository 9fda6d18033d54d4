package valueobjects

import "fmt"

// Status is the lifecycle state of a repair issue. Transitions are
// unrestricted in both directions; regressing from done clears the
// resolution fields on the aggregate.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid issue status: %q", value)
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsOpen reports whether the issue still needs attention. Open issues are the
// ones considered by recency-based duplicate detection.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusInProgress
}
