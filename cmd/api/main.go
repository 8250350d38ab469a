package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/netgenix/printshop-api/docs"
	"github.com/netgenix/printshop-api/internal/auth"
	"github.com/netgenix/printshop-api/internal/config"
	"github.com/netgenix/printshop-api/internal/database"
	"github.com/netgenix/printshop-api/internal/domain"
	"github.com/netgenix/printshop-api/internal/http/handler"
	"github.com/netgenix/printshop-api/internal/http/middleware"
	"github.com/netgenix/printshop-api/internal/http/router"
	"github.com/netgenix/printshop-api/internal/jobs"
	"github.com/netgenix/printshop-api/internal/logger"
	"github.com/netgenix/printshop-api/internal/repository"
	"github.com/netgenix/printshop-api/internal/service"
	"github.com/netgenix/printshop-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title NetGenix Print Shop API
// @version 1.0
// @description Back-office API for print and embroidery shop operations: roll inventory, job costing, expenses and tax reporting

// @contact.name API Support
// @contact.email support@netgenix.co.zm

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "production", "staging":
		docs.SwaggerInfo.Host = os.Getenv("API_PUBLIC_HOST")
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize backup archive storage
	archiveStore, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories
	rollRepo := repository.NewRollRepository(db)
	jobRepo := repository.NewJobRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Seed the business settings row from config defaults on first boot
	if err := seedSettings(ctx, settingsRepo, &cfg.Business, log); err != nil {
		return fmt.Errorf("failed to seed business settings: %w", err)
	}

	// Initialize services
	rollService := service.NewRollService(rollRepo, settingsRepo, cfg.Business.DefaultAlertLevel, log)
	jobService := service.NewJobService(db, jobRepo, rollRepo, rollService, log)
	materialService := service.NewMaterialService(materialRepo, log)
	expenseService := service.NewExpenseService(expenseRepo, log)
	reportService := service.NewReportService(reportRepo, jobRepo, expenseRepo, settingsRepo, service.BusinessDefaults{
		Name:            cfg.Business.Name,
		Currency:        cfg.Business.Currency,
		VATRate:         cfg.Business.VATRate,
		TurnoverTaxRate: cfg.Business.TurnoverTaxRate,
	}, log)
	dashboardService := service.NewDashboardService(jobRepo, expenseRepo, rollRepo, materialRepo, log)
	settingsService := service.NewSettingsService(settingsRepo, domain.BusinessSettings{
		BusinessName:      cfg.Business.Name,
		TPIN:              cfg.Business.TPIN,
		Currency:          cfg.Business.Currency,
		VATRate:           cfg.Business.VATRate,
		TurnoverTaxRate:   cfg.Business.TurnoverTaxRate,
		DefaultAlertLevel: cfg.Business.DefaultAlertLevel,
	}, log)
	profileService := service.NewProfileService(profileRepo, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	rollHandler := handler.NewRollHandler(rollService, log)
	jobHandler := handler.NewJobHandler(jobService, log)
	materialHandler := handler.NewMaterialHandler(materialService, log)
	expenseHandler := handler.NewExpenseHandler(expenseService, log)
	reportHandler := handler.NewReportHandler(reportService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, log)
	settingsHandler := handler.NewSettingsHandler(settingsService, log)
	authHandler := handler.NewAuthHandler(profileService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		rollHandler,
		jobHandler,
		materialHandler,
		expenseHandler,
		reportHandler,
		dashboardHandler,
		settingsHandler,
		authHandler,
	)

	// Start scheduler with the weekly backup job
	var scheduler *jobs.Scheduler
	if cfg.Backup.Enabled {
		scheduler = jobs.NewScheduler(log)
		backupJob := jobs.NewBackupJob(db, archiveStore, log, 10*time.Minute)
		if err := scheduler.AddJob(jobs.BackupJobName, cfg.Backup.Cron, backupJob.Run); err != nil {
			log.Error("Failed to register backup job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with backup job",
				zap.String("cron_expr", cfg.Backup.Cron))
		}
	} else {
		log.Info("Scheduled backups disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

// seedSettings writes the business settings row from config defaults when no
// row exists yet. An existing row is left untouched; the settings endpoint
// owns it from then on.
func seedSettings(ctx context.Context, repo *repository.SettingsRepository, business *config.BusinessConfig, log *zap.Logger) error {
	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	settings := &domain.BusinessSettings{
		BusinessName:      business.Name,
		TPIN:              business.TPIN,
		Currency:          business.Currency,
		VATRate:           business.VATRate,
		TurnoverTaxRate:   business.TurnoverTaxRate,
		DefaultAlertLevel: business.DefaultAlertLevel,
		UpdatedAt:         time.Now().UTC(),
	}
	if err := repo.Save(ctx, settings); err != nil {
		return err
	}

	log.Info("business settings seeded from config",
		zap.String("business_name", settings.BusinessName),
		zap.String("currency", settings.Currency))
	return nil
}
