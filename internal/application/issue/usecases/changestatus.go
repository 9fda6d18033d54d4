package usecases

import (
	"context"
	"fmt"

	"dormdesk/internal/domain/audit"
	"dormdesk/internal/domain/hall"
	"dormdesk/internal/domain/issue"
	vo "dormdesk/internal/domain/issue/valueobjects"
	"dormdesk/internal/shared/db"
	"dormdesk/internal/shared/errors"
	"dormdesk/internal/shared/goroutine"
	"dormdesk/internal/shared/logger"
)

// EmailService sends reporter-facing notifications. Implementations may be a
// no-op when email is disabled in config.
type EmailService interface {
	SendIssueResolvedEmail(to string, issueID uint, hallName, roomNumber string) error
}

type ChangeStatusCommand struct {
	IssueID   uint
	NewStatus string
	ActorID   *uint
}

type ChangeStatusResult struct {
	IssueID   uint   `json:"issue_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

type ChangeStatusUseCase struct {
	issues       issue.Repository
	halls        hall.Repository
	audits       audit.Repository
	emailService EmailService
	tm           *db.TransactionManager
	logger       logger.Interface
}

func NewChangeStatusUseCase(
	issues issue.Repository,
	halls hall.Repository,
	audits audit.Repository,
	emailService EmailService,
	tm *db.TransactionManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		issues:       issues,
		halls:        halls,
		audits:       audits,
		emailService: emailService,
		tm:           tm,
		logger:       logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	iss, err := uc.issues.FindByID(ctx, cmd.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to load issue", "issue_id", cmd.IssueID, "error", err)
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("issue %d not found", cmd.IssueID))
	}

	oldStatus := iss.Status()
	if oldStatus == newStatus {
		return &ChangeStatusResult{
			IssueID:   iss.ID(),
			OldStatus: oldStatus.String(),
			NewStatus: newStatus.String(),
		}, nil
	}

	txErr := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := iss.ChangeStatus(newStatus, cmd.ActorID); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.issues.Update(txCtx, iss); err != nil {
			return err
		}

		oldVal := oldStatus.String()
		newVal := newStatus.String()
		entry, err := audit.NewEntry(iss.ID(), cmd.ActorID, audit.ActionStatusChange, &oldVal, &newVal, nil)
		if err != nil {
			return err
		}
		return uc.audits.Append(txCtx, entry)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to change issue status",
			"issue_id", cmd.IssueID, "new_status", cmd.NewStatus, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("issue status changed",
		"issue_id", iss.ID(),
		"old_status", oldStatus.String(),
		"new_status", newStatus.String(),
	)

	if newStatus == vo.StatusDone {
		uc.notifyResolved(iss)
	}

	return &ChangeStatusResult{
		IssueID:   iss.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
	}, nil
}

// notifyResolved emails the reporter in the background. Notification failures
// never affect the status update itself.
func (uc *ChangeStatusUseCase) notifyResolved(iss *issue.Issue) {
	issueID := iss.ID()
	email := iss.Email()
	roomNumber := iss.RoomNumber()
	hallID := iss.HallID()

	goroutine.SafeGo(uc.logger, "issue-resolved-email", func() {
		hallName := ""
		if h, err := uc.halls.FindByID(context.Background(), hallID); err == nil && h != nil {
			hallName = h.Name()
		}
		if err := uc.emailService.SendIssueResolvedEmail(email, issueID, hallName, roomNumber); err != nil {
			uc.logger.Warnw("failed to send resolution email", "issue_id", issueID, "error", err)
		}
	})
}
