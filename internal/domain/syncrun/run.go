// Package syncrun holds the run ledger and the asset retry queue entities:
// the durable state the reconciliation engine resumes from.
package syncrun

import (
	"fmt"
	"time"
)

// Kind distinguishes manually triggered runs from scheduled ones.
type Kind string

const (
	KindManual    Kind = "manual"
	KindScheduled Kind = "scheduled"
)

func (k Kind) IsValid() bool {
	return k == KindManual || k == KindScheduled
}

func (k Kind) String() string { return string(k) }

// Status is the terminal state of a run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (s Status) String() string { return string(s) }

// RetryStats summarizes the retry-queue drain performed at the start of a run.
type RetryStats struct {
	Checked  int
	Uploaded int
	Failed   int
}

// Counts is the per-run row accounting.
type Counts struct {
	Processed int
	Created   int
	Skipped   int
}

// Run is one reconciliation attempt. It is created in a provisional failed
// state so a mid-run crash leaves an honest record, and finalized exactly
// once. After completion a run is never mutated.
type Run struct {
	id          uint
	kind        Kind
	status      Status
	startedAt   time.Time
	completedAt *time.Time
	counts      Counts
	retryStats  RetryStats
	errors      []string
	cursor      int
}

// NewRun starts a provisional run record. Status begins as failed on purpose.
func NewRun(kind Kind) (*Run, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid run kind: %q", kind)
	}
	return &Run{
		kind:      kind,
		status:    StatusFailed,
		startedAt: time.Now().UTC(),
	}, nil
}

// ReconstructRun rebuilds a run from persistence.
func ReconstructRun(
	id uint,
	kind Kind,
	status Status,
	startedAt time.Time,
	completedAt *time.Time,
	counts Counts,
	retryStats RetryStats,
	errs []string,
	cursor int,
) (*Run, error) {
	if id == 0 {
		return nil, fmt.Errorf("run ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid run kind: %q", kind)
	}
	return &Run{
		id:          id,
		kind:        kind,
		status:      status,
		startedAt:   startedAt,
		completedAt: completedAt,
		counts:      counts,
		retryStats:  retryStats,
		errors:      errs,
		cursor:      cursor,
	}, nil
}

func (r *Run) ID() uint                { return r.id }
func (r *Run) Kind() Kind              { return r.kind }
func (r *Run) Status() Status          { return r.status }
func (r *Run) StartedAt() time.Time    { return r.startedAt }
func (r *Run) CompletedAt() *time.Time { return r.completedAt }
func (r *Run) Counts() Counts          { return r.counts }
func (r *Run) RetryStats() RetryStats  { return r.retryStats }
func (r *Run) Cursor() int             { return r.cursor }

// Errors returns a copy of the run's error strings.
func (r *Run) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

func (r *Run) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("run ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("run ID cannot be zero")
	}
	r.id = id
	return nil
}

// ApplyRetryStats records the drain summary gathered before row processing.
func (r *Run) ApplyRetryStats(stats RetryStats) {
	r.retryStats = stats
}

// Finalize closes the run with its terminal status, counts, error list and
// resumption cursor. It is written on every exit path, including failures.
func (r *Run) Finalize(status Status, counts Counts, errs []string, cursor int) {
	now := time.Now().UTC()
	r.status = status
	r.completedAt = &now
	r.counts = counts
	r.errors = errs
	r.cursor = cursor
}
