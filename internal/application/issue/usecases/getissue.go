package usecases

import (
	"context"
	"fmt"
	"time"

	"dormdesk/internal/application/issue/dto"
	"dormdesk/internal/domain/audit"
	"dormdesk/internal/domain/issue"
	"dormdesk/internal/shared/errors"
	"dormdesk/internal/shared/logger"
)

type GetIssueQuery struct {
	IssueID uint
}

// AuditEntryDTO is one history record on an issue.
type AuditEntryDTO struct {
	Action    string  `json:"action"`
	ActorID   *uint   `json:"actor_id,omitempty"`
	OldValue  *string `json:"old_value,omitempty"`
	NewValue  *string `json:"new_value,omitempty"`
	Details   *string `json:"details,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type GetIssueResult struct {
	Issue   *dto.IssueDTO    `json:"issue"`
	History []*AuditEntryDTO `json:"history"`
}

type GetIssueUseCase struct {
	issues issue.Repository
	audits audit.Repository
	logger logger.Interface
}

func NewGetIssueUseCase(issues issue.Repository, audits audit.Repository, logger logger.Interface) *GetIssueUseCase {
	return &GetIssueUseCase{issues: issues, audits: audits, logger: logger}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*GetIssueResult, error) {
	iss, err := uc.issues.FindByID(ctx, query.IssueID)
	if err != nil {
		uc.logger.Errorw("failed to load issue", "issue_id", query.IssueID, "error", err)
		return nil, err
	}
	if iss == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("issue %d not found", query.IssueID))
	}

	entries, err := uc.audits.ListByIssue(ctx, iss.ID())
	if err != nil {
		uc.logger.Errorw("failed to load issue history", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	history := make([]*AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		history = append(history, &AuditEntryDTO{
			Action:    e.Action(),
			ActorID:   e.ActorID(),
			OldValue:  e.OldValue(),
			NewValue:  e.NewValue(),
			Details:   e.Details(),
			CreatedAt: e.CreatedAt().UTC().Format(time.RFC3339),
		})
	}

	return &GetIssueResult{
		Issue:   issueToDTO(iss),
		History: history,
	}, nil
}
