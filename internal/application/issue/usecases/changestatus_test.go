package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dormdesk/internal/domain/audit"
	"dormdesk/internal/domain/hall"
	"dormdesk/internal/domain/issue"
	vo "dormdesk/internal/domain/issue/valueobjects"
	"dormdesk/internal/shared/db"
	"dormdesk/internal/shared/errors"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gormDB)
}

func newTestIssue(t *testing.T, id uint, status vo.Status) *issue.Issue {
	now := time.Now().UTC()
	var resolvedAt *time.Time
	var resolvedBy *uint
	if status == vo.StatusDone {
		resolvedAt = &now
		actor := uint(1)
		resolvedBy = &actor
	}
	iss, err := issue.ReconstructIssue(
		id, nil, "a@b.edu", nil, 1, "101", 2, nil, nil,
		status, resolvedAt, resolvedBy, now, now,
	)
	require.NoError(t, err)
	return iss
}

func TestChangeStatusUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	actorID := uint(7)

	t.Run("moves a pending issue to in_progress with an audit entry", func(t *testing.T) {
		iss := newTestIssue(t, 42, vo.StatusPending)
		issues := &mockIssueRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
		}
		var entry *audit.Entry
		audits := &mockAuditRepository{
			AppendFunc: func(ctx context.Context, e *audit.Entry) error {
				entry = e
				return nil
			},
		}
		emailSent := false
		email := &mockEmailService{
			SendIssueResolvedEmailFunc: func(to string, issueID uint, hallName, roomNumber string) error {
				emailSent = true
				return nil
			},
		}

		uc := NewChangeStatusUseCase(issues, &mockHallRepository{}, audits, email, newTestTxManager(t), &mockLogger{})
		result, err := uc.Execute(ctx, ChangeStatusCommand{IssueID: 42, NewStatus: "in_progress", ActorID: &actorID})
		require.NoError(t, err)

		assert.Equal(t, "pending", result.OldStatus)
		assert.Equal(t, "in_progress", result.NewStatus)
		assert.Equal(t, vo.StatusInProgress, iss.Status())
		require.NotNil(t, entry)
		assert.Equal(t, audit.ActionStatusChange, entry.Action())
		require.NotNil(t, entry.OldValue())
		assert.Equal(t, "pending", *entry.OldValue())
		require.NotNil(t, entry.NewValue())
		assert.Equal(t, "in_progress", *entry.NewValue())
		assert.False(t, emailSent)
	})

	t.Run("moving to done stamps resolution and notifies the reporter", func(t *testing.T) {
		iss := newTestIssue(t, 42, vo.StatusInProgress)
		issues := &mockIssueRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
		}
		kofo, err := hall.ReconstructHall(1, "Kofo Hall", time.Now().UTC())
		require.NoError(t, err)
		halls := &mockHallRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*hall.Hall, error) { return kofo, nil },
		}

		sent := make(chan string, 1)
		email := &mockEmailService{
			SendIssueResolvedEmailFunc: func(to string, issueID uint, hallName, roomNumber string) error {
				assert.Equal(t, uint(42), issueID)
				assert.Equal(t, "Kofo Hall", hallName)
				assert.Equal(t, "101", roomNumber)
				sent <- to
				return nil
			},
		}

		uc := NewChangeStatusUseCase(issues, halls, &mockAuditRepository{}, email, newTestTxManager(t), &mockLogger{})
		_, err = uc.Execute(ctx, ChangeStatusCommand{IssueID: 42, NewStatus: "done", ActorID: &actorID})
		require.NoError(t, err)

		assert.Equal(t, vo.StatusDone, iss.Status())
		require.NotNil(t, iss.ResolvedAt())
		require.NotNil(t, iss.ResolvedBy())
		assert.Equal(t, actorID, *iss.ResolvedBy())

		select {
		case to := <-sent:
			assert.Equal(t, "a@b.edu", to)
		case <-time.After(2 * time.Second):
			t.Fatal("resolution email was not sent")
		}
	})

	t.Run("regressing from done clears resolution without an email", func(t *testing.T) {
		iss := newTestIssue(t, 42, vo.StatusDone)
		issues := &mockIssueRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
		}
		email := &mockEmailService{
			SendIssueResolvedEmailFunc: func(to string, issueID uint, hallName, roomNumber string) error {
				t.Error("no email expected on regress")
				return nil
			},
		}

		uc := NewChangeStatusUseCase(issues, &mockHallRepository{}, &mockAuditRepository{}, email, newTestTxManager(t), &mockLogger{})
		result, err := uc.Execute(ctx, ChangeStatusCommand{IssueID: 42, NewStatus: "pending", ActorID: &actorID})
		require.NoError(t, err)

		assert.Equal(t, "done", result.OldStatus)
		assert.Nil(t, iss.ResolvedAt())
		assert.Nil(t, iss.ResolvedBy())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		iss := newTestIssue(t, 42, vo.StatusPending)
		issues := &mockIssueRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) { return iss, nil },
			UpdateFunc: func(ctx context.Context, i *issue.Issue) error {
				t.Error("no update expected for a no-op")
				return nil
			},
		}

		uc := NewChangeStatusUseCase(issues, &mockHallRepository{}, &mockAuditRepository{}, &mockEmailService{}, newTestTxManager(t), &mockLogger{})
		result, err := uc.Execute(ctx, ChangeStatusCommand{IssueID: 42, NewStatus: "pending", ActorID: &actorID})
		require.NoError(t, err)
		assert.Equal(t, result.OldStatus, result.NewStatus)
	})

	t.Run("unknown issue yields not found", func(t *testing.T) {
		uc := NewChangeStatusUseCase(&mockIssueRepository{}, &mockHallRepository{}, &mockAuditRepository{}, &mockEmailService{}, newTestTxManager(t), &mockLogger{})

		result, err := uc.Execute(ctx, ChangeStatusCommand{IssueID: 404, NewStatus: "done"})
		assert.Nil(t, result)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		uc := NewChangeStatusUseCase(&mockIssueRepository{}, &mockHallRepository{}, &mockAuditRepository{}, &mockEmailService{}, newTestTxManager(t), &mockLogger{})

		result, err := uc.Execute(ctx, ChangeStatusCommand{IssueID: 42, NewStatus: "closed"})
		assert.Nil(t, result)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})
}
