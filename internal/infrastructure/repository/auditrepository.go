package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dormdesk/internal/domain/audit"
	"dormdesk/internal/infrastructure/persistence/mappers"
	"dormdesk/internal/infrastructure/persistence/models"
	"dormdesk/internal/shared/db"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(database *gorm.DB) audit.Repository {
	return &AuditRepository{db: database}
}

func (r *AuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := mappers.AuditToModel(entry)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListByIssue(ctx context.Context, issueID uint) ([]*audit.Entry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var entryModels []models.AuditEntryModel
	err := tx.Where("issue_id = ?", issueID).Order("created_at ASC").Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(entryModels))
	for i := range entryModels {
		entry, err := mappers.AuditToDomain(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
