package usecases

import (
	"context"

	"dormdesk/internal/application/sync/dto"
)

type RunSyncExecutor interface {
	Execute(ctx context.Context, cmd RunSyncCommand) (*dto.RunSyncResult, error)
}

type GetSyncStatusExecutor interface {
	Execute(ctx context.Context, query GetSyncStatusQuery) (*GetSyncStatusResult, error)
}

type ListSyncRunsExecutor interface {
	Execute(ctx context.Context, query ListSyncRunsQuery) (*ListSyncRunsResult, error)
}
