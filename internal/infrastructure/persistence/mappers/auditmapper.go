package mappers

import (
	"dormdesk/internal/domain/audit"
	"dormdesk/internal/infrastructure/persistence/models"
)

// AuditToModel converts an audit entry domain entity to a persistence model.
func AuditToModel(e *audit.Entry) *models.AuditEntryModel {
	return &models.AuditEntryModel{
		ID:        e.ID(),
		IssueID:   e.IssueID(),
		ActorID:   e.ActorID(),
		Action:    e.Action(),
		OldValue:  e.OldValue(),
		NewValue:  e.NewValue(),
		Details:   e.Details(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

// AuditToDomain converts an audit entry persistence model to a domain entity.
func AuditToDomain(model *models.AuditEntryModel) (*audit.Entry, error) {
	return audit.ReconstructEntry(
		model.ID,
		model.IssueID,
		model.ActorID,
		model.Action,
		model.OldValue,
		model.NewValue,
		model.Details,
		millisToTime(model.CreatedAt),
	)
}
