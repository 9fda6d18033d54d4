package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dormdesk/internal/domain/category"
	"dormdesk/internal/infrastructure/persistence/mappers"
	"dormdesk/internal/infrastructure/persistence/models"
	"dormdesk/internal/shared/db"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(database *gorm.DB) category.Repository {
	return &CategoryRepository{db: database}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CategoryModel
	err := tx.Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}
	return mappers.CategoryToDomain(&model)
}

func (r *CategoryRepository) FindActiveByName(ctx context.Context, name string) (*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CategoryModel
	err := tx.Where("LOWER(name) = LOWER(?) AND active = ?", name, true).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return mappers.CategoryToDomain(&model)
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryModels []models.CategoryModel
	if err := tx.Where("active = ?", true).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, 0, len(categoryModels))
	for i := range categoryModels {
		c, err := mappers.CategoryToDomain(&categoryModels[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
