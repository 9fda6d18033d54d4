package usecases

import (
	"context"

	"dormdesk/internal/application/issue/dto"
	"dormdesk/internal/domain/category"
	"dormdesk/internal/domain/hall"
	"dormdesk/internal/domain/issue"
	vo "dormdesk/internal/domain/issue/valueobjects"
	"dormdesk/internal/shared/errors"
	"dormdesk/internal/shared/logger"
)

type ListIssuesQuery struct {
	HallID     *uint
	CategoryID *uint
	Status     *string
	Email      *string
	Page       int
	PageSize   int
}

type ListIssuesResult struct {
	Issues []*dto.IssueDTO `json:"issues"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
}

type ListIssuesUseCase struct {
	issues     issue.Repository
	halls      hall.Repository
	categories category.Repository
	logger     logger.Interface
}

func NewListIssuesUseCase(
	issues issue.Repository,
	halls hall.Repository,
	categories category.Repository,
	logger logger.Interface,
) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issues:     issues,
		halls:      halls,
		categories: categories,
		logger:     logger,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	if query.Status != nil && !vo.Status(*query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status filter: " + *query.Status)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := issue.Filter{
		HallID:     query.HallID,
		CategoryID: query.CategoryID,
		Status:     query.Status,
		Email:      query.Email,
		Page:       page,
		PageSize:   pageSize,
	}

	issues, total, err := uc.issues.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	hallNames, catNames := uc.referenceNames(ctx)

	dtos := make([]*dto.IssueDTO, 0, len(issues))
	for _, iss := range issues {
		d := issueToDTO(iss)
		d.HallName = hallNames[iss.HallID()]
		d.CategoryName = catNames[iss.CategoryID()]
		dtos = append(dtos, d)
	}

	return &ListIssuesResult{
		Issues: dtos,
		Total:  total,
		Page:   page,
	}, nil
}

// referenceNames loads the hall and category name maps. Both tables are tiny;
// a failed lookup just leaves the names blank in the listing.
func (uc *ListIssuesUseCase) referenceNames(ctx context.Context) (map[uint]string, map[uint]string) {
	hallNames := make(map[uint]string)
	if halls, err := uc.halls.ListAll(ctx); err != nil {
		uc.logger.Warnw("failed to load halls for listing", "error", err)
	} else {
		for _, h := range halls {
			hallNames[h.ID()] = h.Name()
		}
	}

	catNames := make(map[uint]string)
	if cats, err := uc.categories.ListActive(ctx); err != nil {
		uc.logger.Warnw("failed to load categories for listing", "error", err)
	} else {
		for _, c := range cats {
			catNames[c.ID()] = c.Name()
		}
	}
	return hallNames, catNames
}

func issueToDTO(iss *issue.Issue) *dto.IssueDTO {
	return &dto.IssueDTO{
		ID:          iss.ID(),
		SubmittedAt: iss.SubmittedAt(),
		Email:       iss.Email(),
		Name:        iss.Name(),
		HallID:      iss.HallID(),
		RoomNumber:  iss.RoomNumber(),
		CategoryID:  iss.CategoryID(),
		Description: iss.Description(),
		ImageURL:    iss.ImageURL(),
		Status:      iss.Status().String(),
		ResolvedAt:  iss.ResolvedAt(),
		ResolvedBy:  iss.ResolvedBy(),
		CreatedAt:   iss.CreatedAt(),
		UpdatedAt:   iss.UpdatedAt(),
	}
}
