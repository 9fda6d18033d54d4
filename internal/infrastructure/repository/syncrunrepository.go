package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/infrastructure/persistence/mappers"
	"dormdesk/internal/infrastructure/persistence/models"
	"dormdesk/internal/shared/db"
)

type SyncRunRepository struct {
	db     *gorm.DB
	mapper mappers.SyncRunMapper
}

func NewSyncRunRepository(database *gorm.DB) syncrun.Repository {
	return &SyncRunRepository{
		db:     database,
		mapper: mappers.NewSyncRunMapper(),
	}
}

func (r *SyncRunRepository) Create(ctx context.Context, run *syncrun.Run) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(run)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create sync run: %w", err)
	}

	if run.ID() == 0 {
		if err := run.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to assign sync run ID: %w", err)
		}
	}
	return nil
}

func (r *SyncRunRepository) Update(ctx context.Context, run *syncrun.Run) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(run)
	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update sync run: %w", err)
	}
	return nil
}

func (r *SyncRunRepository) LastSuccessful(ctx context.Context) (*syncrun.Run, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SyncRunModel
	err := tx.Where("status = ?", syncrun.StatusSuccess.String()).
		Order("started_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find last successful sync run: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *SyncRunRepository) Latest(ctx context.Context) (*syncrun.Run, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SyncRunModel
	err := tx.Order("started_at DESC").First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest sync run: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *SyncRunRepository) List(ctx context.Context, page, pageSize int) ([]*syncrun.Run, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.SyncRunModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sync runs: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var runModels []models.SyncRunModel
	err := tx.Order("started_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&runModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sync runs: %w", err)
	}

	runs := make([]*syncrun.Run, 0, len(runModels))
	for i := range runModels {
		run, err := r.mapper.ToDomain(&runModels[i])
		if err != nil {
			return nil, 0, err
		}
		runs = append(runs, run)
	}
	return runs, total, nil
}
