package mappers

import (
	"dormdesk/internal/domain/category"
	"dormdesk/internal/domain/hall"
	"dormdesk/internal/infrastructure/persistence/models"
)

// HallToDomain converts a hall persistence model to a domain entity.
func HallToDomain(model *models.HallModel) (*hall.Hall, error) {
	return hall.ReconstructHall(model.ID, model.Name, millisToTime(model.CreatedAt))
}

// HallToModel converts a hall domain entity to a persistence model.
func HallToModel(h *hall.Hall) *models.HallModel {
	return &models.HallModel{
		ID:        h.ID(),
		Name:      h.Name(),
		CreatedAt: h.CreatedAt().UnixMilli(),
	}
}

// CategoryToDomain converts a category persistence model to a domain entity.
func CategoryToDomain(model *models.CategoryModel) (*category.Category, error) {
	return category.ReconstructCategory(model.ID, model.Name, model.Active, millisToTime(model.CreatedAt))
}

// CategoryToModel converts a category domain entity to a persistence model.
func CategoryToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        c.ID(),
		Name:      c.Name(),
		Active:    c.IsActive(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}
