package mappers

import (
	"fmt"

	"dormdesk/internal/domain/issue"
	vo "dormdesk/internal/domain/issue/valueobjects"
	"dormdesk/internal/infrastructure/persistence/models"
)

// IssueMapper handles the conversion between Issue domain entities and persistence models.
type IssueMapper interface {
	// ToModel converts an issue domain entity to a persistence model.
	ToModel(i *issue.Issue) *models.IssueModel

	// ToDomain converts an issue persistence model to a domain entity.
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
}

// IssueMapperImpl is the concrete implementation of IssueMapper.
type IssueMapperImpl struct{}

// NewIssueMapper creates a new IssueMapper.
func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	return &models.IssueModel{
		ID:          i.ID(),
		SubmittedAt: timePtrToMillisPtr(i.SubmittedAt()),
		Email:       i.Email(),
		Name:        i.Name(),
		HallID:      i.HallID(),
		RoomNumber:  i.RoomNumber(),
		CategoryID:  i.CategoryID(),
		Description: i.Description(),
		ImageURL:    i.ImageURL(),
		Status:      i.Status().String(),
		ResolvedAt:  timePtrToMillisPtr(i.ResolvedAt()),
		ResolvedBy:  i.ResolvedBy(),
		CreatedAt:   i.CreatedAt().UnixMilli(),
		UpdatedAt:   i.UpdatedAt().UnixMilli(),
	}
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid issue status in storage (id=%d): %w", model.ID, err)
	}

	return issue.ReconstructIssue(
		model.ID,
		millisPtrToTimePtr(model.SubmittedAt),
		model.Email,
		model.Name,
		model.HallID,
		model.RoomNumber,
		model.CategoryID,
		model.Description,
		model.ImageURL,
		status,
		millisPtrToTimePtr(model.ResolvedAt),
		model.ResolvedBy,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
