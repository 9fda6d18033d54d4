package usecases

import (
	"context"

	"dormdesk/internal/application/sync/dto"
	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/shared/logger"
)

type ListSyncRunsQuery struct {
	Page     int
	PageSize int
}

type ListSyncRunsResult struct {
	Runs  []*dto.SyncRunDTO `json:"runs"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
}

type ListSyncRunsUseCase struct {
	runs   syncrun.Repository
	logger logger.Interface
}

func NewListSyncRunsUseCase(runs syncrun.Repository, logger logger.Interface) *ListSyncRunsUseCase {
	return &ListSyncRunsUseCase{runs: runs, logger: logger}
}

func (uc *ListSyncRunsUseCase) Execute(ctx context.Context, query ListSyncRunsQuery) (*ListSyncRunsResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	runs, total, err := uc.runs.List(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list sync runs", "error", err)
		return nil, err
	}

	dtos := make([]*dto.SyncRunDTO, 0, len(runs))
	for _, run := range runs {
		dtos = append(dtos, runToDTO(run))
	}

	return &ListSyncRunsResult{
		Runs:  dtos,
		Total: total,
		Page:  page,
	}, nil
}
