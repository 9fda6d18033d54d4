package sync

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dormdesk/internal/application/sync/services"
	"dormdesk/internal/application/sync/usecases"
	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/infrastructure/assets"
	"dormdesk/internal/infrastructure/config"
	"dormdesk/internal/infrastructure/database"
	"dormdesk/internal/infrastructure/feed"
	"dormdesk/internal/infrastructure/repository"
	"dormdesk/internal/shared/db"
	"dormdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one feed reconciliation pass",
		Long:  `Fetch the submission feed, reconcile new rows into the issue tracker, and print the run summary.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if cfg.Sync.SheetID == "" {
		return fmt.Errorf("sync.sheet_id is not configured")
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gormDB := database.Get()
	tm := db.NewTransactionManager(gormDB)

	issueRepo := repository.NewIssueRepository(gormDB)
	hallRepo := repository.NewHallRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	runRepo := repository.NewSyncRunRepository(gormDB)
	retryRepo := repository.NewRetryRepository(gormDB)
	auditRepo := repository.NewAuditRepository(gormDB)

	fetchTimeout := time.Duration(cfg.Sync.FetchTimeoutSeconds) * time.Second

	feedReader := feed.NewCSVReader(&cfg.Feed, fetchTimeout, log.Named("feed"))
	normalizer := assets.NewDriveURLNormalizer(log.Named("assets"))
	uploader, err := assets.NewS3Uploader(&cfg.AssetStore, fetchTimeout, log.Named("assets"))
	if err != nil {
		return fmt.Errorf("failed to initialize asset store: %w", err)
	}

	syncLog := log.Named("sync")
	parser := services.NewSubmissionParser(syncLog)
	resolver := services.NewReferenceResolver(hallRepo, categoryRepo, syncLog)
	dedup := services.NewDuplicateChecker(issueRepo)
	retryQueue := services.NewRetryQueue(retryRepo, issueRepo, uploader, normalizer, tm, syncLog)

	runSyncUC := usecases.NewRunSyncUseCase(
		runRepo, issueRepo, auditRepo,
		feedReader, parser, resolver, dedup, retryQueue,
		uploader, normalizer, tm, syncLog,
		cfg.Sync.SheetID, cfg.Sync.RetryDrainLimit,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	result, err := runSyncUC.Execute(ctx, usecases.RunSyncCommand{Kind: syncrun.KindManual.String()})
	if err != nil {
		return fmt.Errorf("sync run failed: %w", err)
	}

	fmt.Printf("\nSync Run Summary:\n")
	fmt.Printf("  Status:          %s\n", result.Status)
	fmt.Printf("  Rows Processed:  %d\n", result.RowsProcessed)
	fmt.Printf("  Rows Created:    %d\n", result.RowsCreated)
	fmt.Printf("  Rows Skipped:    %d\n", result.RowsSkipped)
	fmt.Printf("  Cursor:          %d\n", result.LastSyncedRowIndex)
	fmt.Printf("  Retry Checked:   %d\n", result.RetrySummary.EntriesChecked)
	fmt.Printf("  Retry Uploaded:  %d\n", result.RetrySummary.ImagesUploaded)
	if len(result.Errors) > 0 {
		fmt.Printf("  Errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("    - %s\n", e)
		}
	}

	if result.Status != syncrun.StatusSuccess.String() {
		return fmt.Errorf("sync run finished with status %s", result.Status)
	}

	return nil
}
