package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dormdesk/internal/domain/issue"
	vo "dormdesk/internal/domain/issue/valueobjects"
	"dormdesk/internal/infrastructure/persistence/mappers"
	"dormdesk/internal/infrastructure/persistence/models"
	"dormdesk/internal/shared/db"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(database *gorm.DB) issue.Repository {
	return &IssueRepository{
		db:     database,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(i)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}

	if i.ID() == 0 {
		if err := i.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to assign issue ID: %w", err)
		}
	}
	return nil
}

func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(i)
	result := tx.Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}
	return nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id uint) (*issue.Issue, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.IssueModel
	err := tx.Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find issue by ID: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) List(ctx context.Context, filter issue.Filter) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.IssueModel{})
	if filter.HallID != nil {
		query = query.Where("hall_id = ?", *filter.HallID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var issueModels []models.IssueModel
	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&issueModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, 0, len(issueModels))
	for i := range issueModels {
		iss, err := r.mapper.ToDomain(&issueModels[i])
		if err != nil {
			return nil, 0, err
		}
		issues = append(issues, iss)
	}
	return issues, total, nil
}

func (r *IssueRepository) ExistsBySubmission(ctx context.Context, submittedAt time.Time, email string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.IssueModel{}).
		Where("submitted_at = ? AND email = ?", submittedAt.UnixMilli(), email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check submission existence: %w", err)
	}
	return count > 0, nil
}

func (r *IssueRepository) ExistsRecentOpen(ctx context.Context, email string, hallID uint, roomNumber string, categoryID uint, cutoff time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.IssueModel{}).
		Where("email = ? AND hall_id = ? AND room_number = ? AND category_id = ?",
			email, hallID, roomNumber, categoryID).
		Where("status IN ?", []string{vo.StatusPending.String(), vo.StatusInProgress.String()}).
		Where("created_at >= ?", cutoff.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check recent open issue: %w", err)
	}
	return count > 0, nil
}
