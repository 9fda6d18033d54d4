package usecases

import (
	"context"

	"dormdesk/internal/application/sync/dto"
	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/shared/logger"
)

type GetSyncStatusQuery struct{}

// GetSyncStatusResult reports the most recent run and the retry backlog size.
type GetSyncStatusResult struct {
	LatestRun    *dto.SyncRunDTO `json:"latest_run"`
	PendingRetry int64           `json:"pending_retry_entries"`
}

type GetSyncStatusUseCase struct {
	runs    syncrun.Repository
	retries syncrun.RetryRepository
	logger  logger.Interface
}

func NewGetSyncStatusUseCase(
	runs syncrun.Repository,
	retries syncrun.RetryRepository,
	logger logger.Interface,
) *GetSyncStatusUseCase {
	return &GetSyncStatusUseCase{
		runs:    runs,
		retries: retries,
		logger:  logger,
	}
}

func (uc *GetSyncStatusUseCase) Execute(ctx context.Context, _ GetSyncStatusQuery) (*GetSyncStatusResult, error) {
	latest, err := uc.runs.Latest(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load latest sync run", "error", err)
		return nil, err
	}

	pending, err := uc.retries.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count retry entries", "error", err)
		return nil, err
	}

	result := &GetSyncStatusResult{PendingRetry: pending}
	if latest != nil {
		result.LatestRun = runToDTO(latest)
	}
	return result, nil
}

func runToDTO(run *syncrun.Run) *dto.SyncRunDTO {
	counts := run.Counts()
	stats := run.RetryStats()
	return &dto.SyncRunDTO{
		ID:                 run.ID(),
		Kind:               run.Kind().String(),
		Status:             run.Status().String(),
		StartedAt:          run.StartedAt(),
		CompletedAt:        run.CompletedAt(),
		RowsProcessed:      counts.Processed,
		RowsCreated:        counts.Created,
		RowsSkipped:        counts.Skipped,
		RetryChecked:       stats.Checked,
		RetryUploaded:      stats.Uploaded,
		RetryFailed:        stats.Failed,
		Errors:             run.Errors(),
		LastSyncedRowIndex: run.Cursor(),
	}
}
