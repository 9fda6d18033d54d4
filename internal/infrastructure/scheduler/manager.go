// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"dormdesk/internal/application/sync/dto"
	"dormdesk/internal/application/sync/usecases"
	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/shared/biztime"
	"dormdesk/internal/shared/errors"
	"dormdesk/internal/shared/logger"
)

// SyncRunner triggers one feed reconciliation run.
type SyncRunner interface {
	Execute(ctx context.Context, cmd usecases.RunSyncCommand) (*dto.RunSyncResult, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterSyncJob schedules the feed reconciliation run. The job starts
// immediately and repeats at the configured interval; overlapping triggers
// are rescheduled rather than stacked.
func (m *SchedulerManager) RegisterSyncJob(runner SyncRunner, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.runSync(ctx, runner)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("sync", "feed-reconciliation"),
		gocron.WithName("feed-sync"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered sync job", "interval", interval)
	return nil
}

func (m *SchedulerManager) runSync(ctx context.Context, runner SyncRunner) {
	traceID := uuid.NewString()
	log := m.logger.With("trace_id", traceID)
	log.Debugw("scheduled sync run started")

	startTime := time.Now()
	result, err := runner.Execute(ctx, usecases.RunSyncCommand{Kind: syncrun.KindScheduled.String()})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		// A manual run may already hold the engine; skip this tick quietly.
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Type == errors.ErrorTypeConflict {
			log.Warnw("sync run skipped, another run in progress")
			return
		}
		log.Errorw("failed to start sync run", "error", err)
		return
	}

	if result.Status != syncrun.StatusSuccess.String() {
		log.Warnw("scheduled sync run finished with failures",
			"status", result.Status,
			"errors", len(result.Errors),
			"duration", time.Since(startTime),
		)
		return
	}

	log.Infow("scheduled sync run completed",
		"rows_processed", result.RowsProcessed,
		"rows_created", result.RowsCreated,
		"rows_skipped", result.RowsSkipped,
		"retry_uploaded", result.RetrySummary.ImagesUploaded,
		"duration", time.Since(startTime),
	)
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
