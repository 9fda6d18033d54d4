package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dormdesk/internal/domain/hall"
	"dormdesk/internal/infrastructure/persistence/mappers"
	"dormdesk/internal/infrastructure/persistence/models"
	"dormdesk/internal/shared/db"
)

type HallRepository struct {
	db *gorm.DB
}

func NewHallRepository(database *gorm.DB) hall.Repository {
	return &HallRepository{db: database}
}

func (r *HallRepository) FindByID(ctx context.Context, id uint) (*hall.Hall, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.HallModel
	err := tx.Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find hall by ID: %w", err)
	}
	return mappers.HallToDomain(&model)
}

func (r *HallRepository) FindByName(ctx context.Context, name string) (*hall.Hall, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.HallModel
	err := tx.Where("LOWER(name) = LOWER(?)", name).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find hall by name: %w", err)
	}
	return mappers.HallToDomain(&model)
}

func (r *HallRepository) ListAll(ctx context.Context) ([]*hall.Hall, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var hallModels []models.HallModel
	if err := tx.Order("name ASC").Find(&hallModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list halls: %w", err)
	}

	halls := make([]*hall.Hall, 0, len(hallModels))
	for i := range hallModels {
		h, err := mappers.HallToDomain(&hallModels[i])
		if err != nil {
			return nil, err
		}
		halls = append(halls, h)
	}
	return halls, nil
}
