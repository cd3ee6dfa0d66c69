package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"issue-tracker-api/internal/config"
	"issue-tracker-api/internal/database"
	"issue-tracker-api/internal/events"
	"issue-tracker-api/internal/job"
	"issue-tracker-api/internal/metrics"
	"issue-tracker-api/internal/repository"
	"issue-tracker-api/internal/router"
	"issue-tracker-api/internal/service"
	"issue-tracker-api/internal/xlsx"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Issue Tracker API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("storage", cfg.Storage.Backend),
	)

	// Initialize metrics
	m := metrics.New()

	// Build the storage backend
	var (
		db          *gorm.DB
		issueRepo   repository.IssueRepository
		projectRepo repository.ProjectRepository
		commentRepo repository.CommentRepository
	)

	switch cfg.Storage.Backend {
	case config.BackendDatabase:
		db, err = database.New(database.Config{
			Driver:          cfg.Database.Driver,
			DSN:             cfg.Database.GetDSN(),
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime(),
		})
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
		database.RegisterMetricsCallbacks(db, m)
		defer close(database.StartDBStatsCollector(db, m))

		issueRepo = repository.NewIssueRepository(db)
		projectRepo = repository.NewProjectRepository(db)
		commentRepo = repository.NewCommentRepository(db)
		logger.Info("Database backend ready", zap.String("driver", cfg.Database.Driver))

	case config.BackendExcel:
		store, err := xlsx.NewStore(cfg.Storage.DataDir, logger, m)
		if err != nil {
			logger.Fatal("Failed to open workbook store", zap.Error(err))
		}
		issueRepo = xlsx.NewIssueRepository(store)
		projectRepo = xlsx.NewProjectRepository(store)
		commentRepo = xlsx.NewCommentRepository(store)
		logger.Info("Workbook backend ready", zap.String("data_dir", cfg.Storage.DataDir))
	}

	// Optional Redis cache in front of the issue list
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedis(database.RedisConfig{
			URL:      cfg.Redis.URL,
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warn("Failed to connect to Redis, running without list cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			issueRepo = repository.NewCachedIssueRepository(issueRepo, redisClient, logger)
			logger.Info("Redis list cache enabled")
		}
	}

	// Realtime change feed
	hub := events.NewHub(logger)
	go hub.Run()
	defer hub.Stop()

	// Services
	issueService := service.NewIssueService(issueRepo, commentRepo, hub, m, logger)
	projectService := service.NewProjectService(projectRepo, logger)
	commentService := service.NewCommentService(commentRepo, hub, m, logger)

	// Seed default projects into an empty store
	if err := projectService.EnsureSeeded(context.Background()); err != nil {
		logger.Fatal("Failed to seed default projects", zap.Error(err))
	}

	// Scheduled gauge refresh
	statsJob := job.NewStatsJob(issueRepo, projectRepo, m, logger)
	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.Stats.CronSpec, statsJob); err != nil {
		logger.Fatal("Invalid stats schedule", zap.String("spec", cfg.Stats.CronSpec), zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()
	statsJob.Run()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		Logger:         logger,
		Metrics:        m,
		IssueService:   issueService,
		ProjectService: projectService,
		CommentService: commentService,
		Hub:            hub,
		DB:             db,
		StorageBackend: cfg.Storage.Backend,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	// Start server in goroutine
	go func() {
		logger.Info("Issue Tracker API started successfully", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if db != nil {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapConfig.Build()
}
