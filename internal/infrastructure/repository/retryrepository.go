package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/infrastructure/persistence/mappers"
	"dormdesk/internal/infrastructure/persistence/models"
	"dormdesk/internal/shared/db"
)

type RetryRepository struct {
	db     *gorm.DB
	mapper mappers.SyncRunMapper
}

func NewRetryRepository(database *gorm.DB) syncrun.RetryRepository {
	return &RetryRepository{
		db:     database,
		mapper: mappers.NewSyncRunMapper(),
	}
}

// Upsert keeps the queue at one entry per issue: an existing entry has its
// source URL, error and attempt timestamp overwritten and its attempt counter
// incremented instead of gaining a sibling.
func (r *RetryRepository) Upsert(ctx context.Context, issueID uint, sourceURL string, lastError string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	now := time.Now().UTC().UnixMilli()

	var existing models.RetryEntryModel
	err := tx.Where("issue_id = ?", issueID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		model := &models.RetryEntryModel{
			IssueID:         issueID,
			SourceURL:       sourceURL,
			Attempts:        1,
			LastError:       &lastError,
			LastAttemptedAt: &now,
		}
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create retry entry: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up retry entry: %w", err)
	}

	updates := map[string]interface{}{
		"source_url":        sourceURL,
		"attempts":          existing.Attempts + 1,
		"last_error":        lastError,
		"last_attempted_at": now,
	}
	if err := tx.Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update retry entry: %w", err)
	}
	return nil
}

func (r *RetryRepository) ListOldest(ctx context.Context, limit int) ([]*syncrun.RetryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	if limit < 1 {
		limit = 1
	}

	var entryModels []models.RetryEntryModel
	err := tx.Order("created_at ASC").Limit(limit).Find(&entryModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list retry entries: %w", err)
	}

	entries := make([]*syncrun.RetryEntry, 0, len(entryModels))
	for i := range entryModels {
		entry, err := r.mapper.RetryToDomain(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *RetryRepository) Update(ctx context.Context, entry *syncrun.RetryEntry) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.RetryToModel(entry)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update retry entry: %w", err)
	}
	return nil
}

func (r *RetryRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.RetryEntryModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete retry entry: %w", err)
	}
	return nil
}

func (r *RetryRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.RetryEntryModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count retry entries: %w", err)
	}
	return count, nil
}
