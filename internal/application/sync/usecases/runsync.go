package usecases

import (
	"context"
	"fmt"
	"sync/atomic"

	"dormdesk/internal/application/sync/dto"
	"dormdesk/internal/application/sync/services"
	"dormdesk/internal/domain/audit"
	"dormdesk/internal/domain/issue"
	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/shared/db"
	"dormdesk/internal/shared/errors"
	"dormdesk/internal/shared/logger"
)

type RunSyncCommand struct {
	Kind string
}

type RunSyncUseCase struct {
	runs       syncrun.Repository
	issues     issue.Repository
	audits     audit.Repository
	feed       services.FeedReader
	parser     *services.SubmissionParser
	resolver   *services.ReferenceResolver
	dedup      *services.DuplicateChecker
	retryQueue *services.RetryQueue
	uploader   services.AssetUploader
	normalizer services.SourceURLNormalizer
	tm         *db.TransactionManager
	logger     logger.Interface

	sheetID    string
	drainLimit int

	running atomic.Bool
}

func NewRunSyncUseCase(
	runs syncrun.Repository,
	issues issue.Repository,
	audits audit.Repository,
	feed services.FeedReader,
	parser *services.SubmissionParser,
	resolver *services.ReferenceResolver,
	dedup *services.DuplicateChecker,
	retryQueue *services.RetryQueue,
	uploader services.AssetUploader,
	normalizer services.SourceURLNormalizer,
	tm *db.TransactionManager,
	logger logger.Interface,
	sheetID string,
	drainLimit int,
) *RunSyncUseCase {
	return &RunSyncUseCase{
		runs:       runs,
		issues:     issues,
		audits:     audits,
		feed:       feed,
		parser:     parser,
		resolver:   resolver,
		dedup:      dedup,
		retryQueue: retryQueue,
		uploader:   uploader,
		normalizer: normalizer,
		tm:         tm,
		logger:     logger,
		sheetID:    sheetID,
		drainLimit: drainLimit,
	}
}

// Execute performs one full reconciliation pass: drain the asset retry queue,
// fetch the feed snapshot, process the rows past the last successful cursor,
// and finalize the ledger record. Row-level problems are absorbed into the
// run summary; only a run-level failure yields a failed status. The only
// error return is the conflict raised when a run is already in flight.
func (uc *RunSyncUseCase) Execute(ctx context.Context, cmd RunSyncCommand) (*dto.RunSyncResult, error) {
	kind := syncrun.Kind(cmd.Kind)
	if !kind.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid sync kind: %q", cmd.Kind))
	}

	if !uc.running.CompareAndSwap(false, true) {
		return nil, errors.NewConflictError("a sync run is already in progress")
	}
	defer uc.running.Store(false)

	run, err := syncrun.NewRun(kind)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	// The provisional record is written before any work so a crash mid-run
	// still leaves a failed entry in the ledger.
	if err := uc.runs.Create(ctx, run); err != nil {
		uc.logger.Errorw("failed to create sync run record", "error", err)
		return nil, errors.NewInternalError("failed to create sync run record")
	}

	uc.logger.Infow("sync run started", "run_id", run.ID(), "kind", kind.String())
	return uc.execute(ctx, run), nil
}

func (uc *RunSyncUseCase) execute(ctx context.Context, run *syncrun.Run) (result *dto.RunSyncResult) {
	var (
		counts syncrun.Counts
		errs   []string
		cursor int
		drain  dto.RetrySummary
	)

	if last, err := uc.runs.LastSuccessful(ctx); err != nil {
		uc.logger.Errorw("failed to load last successful run", "error", err)
	} else if last != nil {
		cursor = last.Cursor()
	}

	finalize := func(status syncrun.Status) *dto.RunSyncResult {
		run.Finalize(status, counts, errs, cursor)
		if err := uc.runs.Update(ctx, run); err != nil {
			uc.logger.Errorw("failed to finalize sync run", "run_id", run.ID(), "error", err)
		}
		uc.logger.Infow("sync run finished",
			"run_id", run.ID(),
			"status", status.String(),
			"processed", counts.Processed,
			"created", counts.Created,
			"skipped", counts.Skipped,
			"errors", len(errs),
			"cursor", cursor,
		)
		return &dto.RunSyncResult{
			Status:             status.String(),
			RowsProcessed:      counts.Processed,
			RowsCreated:        counts.Created,
			RowsSkipped:        counts.Skipped,
			Errors:             errs,
			LastSyncedRowIndex: cursor,
			RetrySummary:       drain,
		}
	}

	defer func() {
		if r := recover(); r != nil {
			uc.logger.Errorw("sync run panicked", "run_id", run.ID(), "panic", r)
			errs = append(errs, fmt.Sprintf("sync run panicked: %v", r))
			result = finalize(syncrun.StatusFailed)
		}
	}()

	// Previously deferred image uploads get another chance before any new
	// rows are ingested.
	drain = uc.retryQueue.Drain(ctx, uc.drainLimit)
	run.ApplyRetryStats(syncrun.RetryStats{
		Checked:  drain.EntriesChecked,
		Uploaded: drain.ImagesUploaded,
		Failed:   drain.ErrorsCount,
	})

	rows, err := uc.feed.FetchAllRows(ctx, uc.sheetID)
	if err != nil {
		uc.logger.Errorw("failed to fetch submission feed", "run_id", run.ID(), "error", err)
		errs = append(errs, fmt.Sprintf("feed fetch failed: %v", err))
		return finalize(syncrun.StatusFailed)
	}

	// A header-only or empty snapshot is a legitimate state of a fresh form.
	// The cursor keeps its prior value so a glitchy empty response cannot
	// rewind resumption.
	if len(rows) < 2 {
		return finalize(syncrun.StatusSuccess)
	}

	headerIdx := uc.parser.MapHeaders(rows[0])

	start := cursor + 1
	if start < 1 {
		start = 1
	}
	for i := start; i < len(rows); i++ {
		counts.Processed++

		created, rowErr := uc.processRow(ctx, rows[i], headerIdx)
		if created {
			counts.Created++
		} else {
			counts.Skipped++
		}
		if rowErr != "" {
			errs = append(errs, fmt.Sprintf("row %d: %s", i, rowErr))
		}

		// The cursor advances per committed row so an interrupted run
		// resumes exactly where it stopped.
		cursor = i
	}

	return finalize(syncrun.StatusSuccess)
}

// processRow ingests one data row inside its own transaction. It returns
// whether an issue was created and a non-empty description of any problem
// worth surfacing in the run summary. Duplicates are silent: skipping them is
// the engine working as intended, not a problem. A panic is contained at the
// row boundary; the row is reported as skipped and the run continues.
func (uc *RunSyncUseCase) processRow(ctx context.Context, row []string, headerIdx services.HeaderIndex) (created bool, problem string) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Errorw("row processing panicked", "panic", r)
			created = false
			problem = fmt.Sprintf("row processing panicked: %v", r)
		}
	}()

	sub, err := uc.parser.Parse(row, headerIdx)
	if err != nil {
		return false, err.Error()
	}

	h, err := uc.resolver.ResolveHall(ctx, sub.Hall)
	if err != nil {
		return false, fmt.Sprintf("hall lookup failed: %v", err)
	}
	if h == nil {
		return false, fmt.Sprintf("unknown hall %q", sub.Hall)
	}

	cat, err := uc.resolver.ResolveCategory(ctx, sub.Category)
	if err != nil {
		return false, fmt.Sprintf("category lookup failed: %v", err)
	}
	if cat == nil {
		return false, fmt.Sprintf("unresolvable category %q", sub.Category)
	}

	dup, err := uc.dedup.IsDuplicate(ctx, sub.SubmittedAt, sub.Email, h.ID(), sub.RoomNumber, cat.ID())
	if err != nil {
		return false, fmt.Sprintf("duplicate check failed: %v", err)
	}
	if dup {
		uc.logger.Debugw("skipping duplicate submission", "email", sub.Email, "hall_id", h.ID(), "room", sub.RoomNumber)
		return false, ""
	}

	newIssue, err := issue.NewSubmittedIssue(
		sub.SubmittedAt, sub.Email, sub.Name, h.ID(), sub.RoomNumber, cat.ID(), sub.Description,
	)
	if err != nil {
		return false, err.Error()
	}

	var imageErr string
	txErr := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issues.Save(txCtx, newIssue); err != nil {
			return err
		}

		newVal := newIssue.Status().String()
		detail := "issue created from form submission"
		entry, err := audit.NewEntry(newIssue.ID(), nil, audit.ActionCreated, nil, &newVal, &detail)
		if err != nil {
			return err
		}
		if err := uc.audits.Append(txCtx, entry); err != nil {
			return err
		}

		if sub.ImageURL != nil {
			imageErr = uc.processImage(txCtx, newIssue, *sub.ImageURL)
		}
		return nil
	})
	if txErr != nil {
		return false, fmt.Sprintf("failed to persist issue: %v", txErr)
	}

	return true, imageErr
}

// processImage uploads the submission's image and attaches it to the issue.
// A failed upload never rolls the issue back; the image is queued for retry
// and the failure is reported in the run summary.
func (uc *RunSyncUseCase) processImage(ctx context.Context, iss *issue.Issue, rawURL string) string {
	downloadURL := uc.normalizer.Normalize(rawURL)

	assetURL, err := uc.uploader.Upload(ctx, downloadURL, iss.ID())
	if err != nil || assetURL == "" {
		if err == nil {
			err = fmt.Errorf("uploader returned empty asset URL")
		}
		if qErr := uc.retryQueue.Enqueue(ctx, iss.ID(), rawURL, err); qErr != nil {
			uc.logger.Errorw("failed to queue image retry", "issue_id", iss.ID(), "error", qErr)
		}
		return fmt.Sprintf("image upload failed for issue %d, queued for retry: %v", iss.ID(), err)
	}

	if err := iss.AttachImage(assetURL); err != nil {
		return fmt.Sprintf("failed to attach image to issue %d: %v", iss.ID(), err)
	}
	if err := uc.issues.Update(ctx, iss); err != nil {
		return fmt.Sprintf("failed to store image URL on issue %d: %v", iss.ID(), err)
	}
	return ""
}
