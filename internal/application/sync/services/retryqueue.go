package services

import (
	"context"
	"fmt"

	"dormdesk/internal/application/sync/dto"
	"dormdesk/internal/domain/issue"
	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/shared/db"
	"dormdesk/internal/shared/logger"
)

// RetryQueue manages deferred asset uploads. Enqueue records a failed upload
// for the issue; Drain walks the oldest pending entries and retries them. A
// drain failure never blocks the run that triggered it.
type RetryQueue struct {
	entries    syncrun.RetryRepository
	issues     issue.Repository
	uploader   AssetUploader
	normalizer SourceURLNormalizer
	tm         *db.TransactionManager
	logger     logger.Interface
}

func NewRetryQueue(
	entries syncrun.RetryRepository,
	issues issue.Repository,
	uploader AssetUploader,
	normalizer SourceURLNormalizer,
	tm *db.TransactionManager,
	log logger.Interface,
) *RetryQueue {
	return &RetryQueue{
		entries:    entries,
		issues:     issues,
		uploader:   uploader,
		normalizer: normalizer,
		tm:         tm,
		logger:     log,
	}
}

// Enqueue records a failed upload for the issue, replacing any existing entry
// so the queue never holds more than one entry per issue.
func (q *RetryQueue) Enqueue(ctx context.Context, issueID uint, sourceURL string, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	if err := q.entries.Upsert(ctx, issueID, sourceURL, msg); err != nil {
		return fmt.Errorf("enqueue retry for issue %d: %w", issueID, err)
	}
	q.logger.Infow("queued image for retry", "issue_id", issueID, "source_url", sourceURL)
	return nil
}

// Drain retries up to limit of the oldest pending entries. Each entry is
// resolved in its own transaction so one bad entry cannot roll back the
// others. Entries whose issue no longer exists, or whose issue already has an
// image, are dropped without an upload attempt.
func (q *RetryQueue) Drain(ctx context.Context, limit int) dto.RetrySummary {
	summary := dto.RetrySummary{}

	if before, err := q.entries.Count(ctx); err == nil {
		summary.PendingBefore = before
	}

	entries, err := q.entries.ListOldest(ctx, limit)
	if err != nil {
		q.logger.Errorw("failed to list retry queue", "error", err)
		summary.Errors = append(summary.Errors, fmt.Sprintf("retry queue list failed: %v", err))
		summary.ErrorsCount = len(summary.Errors)
		summary.PendingAfter = summary.PendingBefore
		return summary
	}

	for _, entry := range entries {
		summary.EntriesChecked++
		if err := q.drainOne(ctx, entry, &summary); err != nil {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("retry for issue %d failed: %v", entry.IssueID(), err))
		}
	}

	summary.ErrorsCount = len(summary.Errors)
	if after, err := q.entries.Count(ctx); err == nil {
		summary.PendingAfter = after
	}
	return summary
}

func (q *RetryQueue) drainOne(ctx context.Context, entry *syncrun.RetryEntry, summary *dto.RetrySummary) error {
	iss, err := q.issues.FindByID(ctx, entry.IssueID())
	if err != nil {
		return err
	}
	if iss == nil {
		// Orphaned entry, the issue was deleted out of band.
		q.logger.Warnw("dropping retry entry for missing issue", "issue_id", entry.IssueID())
		return q.entries.Delete(ctx, entry.ID())
	}
	if iss.ImageURL() != nil && *iss.ImageURL() != "" {
		return q.entries.Delete(ctx, entry.ID())
	}

	url := q.normalizer.Normalize(entry.SourceURL())
	assetURL, err := q.uploader.Upload(ctx, url, iss.ID())
	if err != nil || assetURL == "" {
		if err == nil {
			err = fmt.Errorf("uploader returned empty asset URL")
		}
		// The failure record must survive, so it is written outside any
		// transaction that the reported error would roll back.
		entry.RecordFailure(err.Error())
		if updateErr := q.entries.Update(ctx, entry); updateErr != nil {
			q.logger.Errorw("failed to record retry attempt",
				"issue_id", entry.IssueID(), "error", updateErr)
		}
		return err
	}

	txErr := q.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := iss.AttachImage(assetURL); err != nil {
			return err
		}
		if err := q.issues.Update(txCtx, iss); err != nil {
			return err
		}
		return q.entries.Delete(txCtx, entry.ID())
	})
	if txErr != nil {
		return txErr
	}

	summary.ImagesUploaded++
	q.logger.Infow("retried image upload succeeded",
		"issue_id", iss.ID(),
		"attempts", entry.Attempts(),
	)
	return nil
}
