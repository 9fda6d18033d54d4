package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	issueUsecases "dormdesk/internal/application/issue/usecases"
	"dormdesk/internal/application/sync/services"
	syncUsecases "dormdesk/internal/application/sync/usecases"
	"dormdesk/internal/infrastructure/assets"
	"dormdesk/internal/infrastructure/config"
	"dormdesk/internal/infrastructure/database"
	"dormdesk/internal/infrastructure/email"
	"dormdesk/internal/infrastructure/feed"
	"dormdesk/internal/infrastructure/repository"
	"dormdesk/internal/infrastructure/scheduler"
	httpRouter "dormdesk/internal/interfaces/http"
	"dormdesk/internal/interfaces/http/handlers"
	"dormdesk/internal/shared/biztime"
	"dormdesk/internal/shared/db"
	"dormdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the DormDesk HTTP server with the scheduled feed sync engine.`,
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

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log.Infow("starting server", "environment", env)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

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

	runSyncUC := syncUsecases.NewRunSyncUseCase(
		runRepo, issueRepo, auditRepo,
		feedReader, parser, resolver, dedup, retryQueue,
		uploader, normalizer, tm, syncLog,
		cfg.Sync.SheetID, cfg.Sync.RetryDrainLimit,
	)
	getStatusUC := syncUsecases.NewGetSyncStatusUseCase(runRepo, retryRepo, syncLog)
	listRunsUC := syncUsecases.NewListSyncRunsUseCase(runRepo, syncLog)

	var emailService issueUsecases.EmailService
	if cfg.Email.Enabled {
		emailService = email.NewSMTPEmailService(&cfg.Email)
	} else {
		emailService = email.NewNoopEmailService()
	}

	changeStatusUC := issueUsecases.NewChangeStatusUseCase(issueRepo, hallRepo, auditRepo, emailService, tm, log)
	listIssuesUC := issueUsecases.NewListIssuesUseCase(issueRepo, hallRepo, categoryRepo, log)
	getIssueUC := issueUsecases.NewGetIssueUseCase(issueRepo, auditRepo, log)

	syncHandler := handlers.NewSyncHandler(runSyncUC, getStatusUC, listRunsUC, log)
	issueHandler := handlers.NewIssueHandler(listIssuesUC, getIssueUC, changeStatusUC, log)

	router := httpRouter.NewRouter(cfg.Server.Mode, cfg.Server.AllowedOrigins, syncHandler, issueHandler, log)

	schedManager, err := scheduler.NewSchedulerManager(log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to initialize scheduler: %w", err)
	}
	if cfg.Sync.SheetID != "" {
		interval := time.Duration(cfg.Sync.IntervalMinutes) * time.Minute
		if err := schedManager.RegisterSyncJob(runSyncUC, interval); err != nil {
			return fmt.Errorf("failed to register sync job: %w", err)
		}
		schedManager.Start()
	} else {
		log.Warnw("sync.sheet_id not configured, scheduled sync disabled")
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	if err := schedManager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
