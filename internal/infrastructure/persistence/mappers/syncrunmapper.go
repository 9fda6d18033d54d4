package mappers

import (
	"encoding/json"
	"fmt"

	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/infrastructure/persistence/models"
)

// SyncRunMapper handles the conversion between run-ledger entities and
// persistence models.
type SyncRunMapper interface {
	ToModel(run *syncrun.Run) *models.SyncRunModel
	ToDomain(model *models.SyncRunModel) (*syncrun.Run, error)

	RetryToModel(entry *syncrun.RetryEntry) *models.RetryEntryModel
	RetryToDomain(model *models.RetryEntryModel) (*syncrun.RetryEntry, error)
}

// SyncRunMapperImpl is the concrete implementation of SyncRunMapper.
type SyncRunMapperImpl struct{}

// NewSyncRunMapper creates a new SyncRunMapper.
func NewSyncRunMapper() SyncRunMapper {
	return &SyncRunMapperImpl{}
}

func (m *SyncRunMapperImpl) ToModel(run *syncrun.Run) *models.SyncRunModel {
	counts := run.Counts()
	stats := run.RetryStats()

	model := &models.SyncRunModel{
		ID:            run.ID(),
		Kind:          run.Kind().String(),
		Status:        run.Status().String(),
		StartedAt:     run.StartedAt().UnixMilli(),
		CompletedAt:   timePtrToMillisPtr(run.CompletedAt()),
		RowsProcessed: counts.Processed,
		RowsCreated:   counts.Created,
		RowsSkipped:   counts.Skipped,
		RetryChecked:  stats.Checked,
		RetryUploaded: stats.Uploaded,
		RetryFailed:   stats.Failed,
		Cursor:        run.Cursor(),
	}

	if errs := run.Errors(); len(errs) > 0 {
		errsJSON, _ := json.Marshal(errs)
		model.Errors = string(errsJSON)
	}

	return model
}

func (m *SyncRunMapperImpl) ToDomain(model *models.SyncRunModel) (*syncrun.Run, error) {
	var errs []string
	if model.Errors != "" {
		if err := json.Unmarshal([]byte(model.Errors), &errs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sync run errors (id=%d): %w", model.ID, err)
		}
	}

	return syncrun.ReconstructRun(
		model.ID,
		syncrun.Kind(model.Kind),
		syncrun.Status(model.Status),
		millisToTime(model.StartedAt),
		millisPtrToTimePtr(model.CompletedAt),
		syncrun.Counts{
			Processed: model.RowsProcessed,
			Created:   model.RowsCreated,
			Skipped:   model.RowsSkipped,
		},
		syncrun.RetryStats{
			Checked:  model.RetryChecked,
			Uploaded: model.RetryUploaded,
			Failed:   model.RetryFailed,
		},
		errs,
		model.Cursor,
	)
}

func (m *SyncRunMapperImpl) RetryToModel(entry *syncrun.RetryEntry) *models.RetryEntryModel {
	return &models.RetryEntryModel{
		ID:              entry.ID(),
		IssueID:         entry.IssueID(),
		SourceURL:       entry.SourceURL(),
		Attempts:        entry.Attempts(),
		LastError:       entry.LastError(),
		LastAttemptedAt: timePtrToMillisPtr(entry.LastAttemptedAt()),
		CreatedAt:       entry.CreatedAt().UnixMilli(),
	}
}

func (m *SyncRunMapperImpl) RetryToDomain(model *models.RetryEntryModel) (*syncrun.RetryEntry, error) {
	return syncrun.ReconstructRetryEntry(
		model.ID,
		model.IssueID,
		model.SourceURL,
		model.Attempts,
		model.LastError,
		millisPtrToTimePtr(model.LastAttemptedAt),
		millisToTime(model.CreatedAt),
	)
}
