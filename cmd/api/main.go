package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/classifier"
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	storageport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/storage"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/service/matcher"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/classification"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/ingestion"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/override"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/review"
	"github.com/amirhossein-jamali/txn-categorizer/internal/domain/usecase/rule"

	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/ai"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/inbox"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, v, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:      coreport.ParseLogLevel(cfg.Logger.Level),
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	config.WatchLogLevel(v, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	ids := id.NewUUIDGenerator()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		fatal(appLogger, "Failed to connect to database", err)
	}
	defer dbManager.Close()

	if err := dbManager.MigrationManager().MigrateAll(ctx); err != nil {
		fatal(appLogger, "Failed to run migrations", err)
	}

	uow := dbManager.CreateUnitOfWork()

	aiClassifier, err := newClassifier(ctx, cfg.AI, appLogger)
	if err != nil {
		fatal(appLogger, "Failed to initialize AI classifier", err)
	}

	blobs, closeBlobs, err := newBlobStore(ctx, cfg.Storage, appLogger)
	if err != nil {
		fatal(appLogger, "Failed to initialize blob storage", err)
	}
	defer closeBlobs()

	// Initialize use cases
	ruleMatcher := matcher.New(appLogger)
	classificationService := classification.NewService(uow, ruleMatcher, aiClassifier, ids, tp, appLogger, classification.Config{
		HistoryWindow:  classification.DefaultConfig().HistoryWindow,
		AITimeout:      coreport.Duration(cfg.AI.Timeout),
		AIMaxAttempts:  cfg.AI.MaxRetries + 1,
		AIRetryBackoff: coreport.Duration(cfg.AI.RetryDelay),
	})
	ledgerService := ledger.NewService(uow, ids, tp, appLogger)
	ingestionService := ingestion.NewService(uow, ledgerService, classificationService, blobs, ids, tp, appLogger,
		ingestion.Config{Concurrency: cfg.Ingestion.Concurrency})
	overrideService := override.NewService(uow, classificationService, ids, tp, appLogger)
	reviewService := review.NewService(uow, appLogger)
	ruleService := rule.NewService(uow, ruleMatcher, classificationService, ids, tp, appLogger)

	// Drop-folder ingestion
	if cfg.Inbox.Enabled {
		watcher, err := inbox.NewWatcher(inbox.Config{
			Dir:      cfg.Inbox.Dir,
			EntityID: cfg.Inbox.EntityID,
			Debounce: cfg.Inbox.Debounce,
		}, ingestionService, ruleService, tp, appLogger)
		if err != nil {
			fatal(appLogger, "Failed to initialize inbox watcher", err)
		}
		if err := watcher.Start(ctx); err != nil {
			fatal(appLogger, "Failed to start inbox watcher", err)
		}
		defer watcher.Close()
	}

	// Initialize API handlers
	handlers := routes.Handlers{
		Health:         handler.NewHealthHandler(dbManager),
		Upload:         handler.NewUploadHandler(ledgerService, ingestionService, cfg.Server.MaxUploadBytes, appLogger),
		Transaction:    handler.NewTransactionHandler(ingestionService, overrideService, appLogger),
		Review:         handler.NewReviewHandler(reviewService, appLogger),
		Rule:           handler.NewRuleHandler(ruleService, appLogger),
		EntityDefaults: handler.NewEntityDefaults(ruleService, appLogger),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, handlers, middleware.Actor(middleware.AuthConfig{
		Enabled:    cfg.Auth.Enabled,
		HMACSecret: cfg.Auth.HMACSecret,
		Issuer:     cfg.Auth.Issuer,
	}, appLogger))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":        server.Addr,
			"env":         cfg.Environment,
			"ai_enabled":  cfg.AI.Enabled,
			"storage":     cfg.Storage.Driver,
			"inbox":       cfg.Inbox.Enabled,
			"auth":        cfg.Auth.Enabled,
			"concurrency": cfg.Ingestion.Concurrency,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		appLogger.Error("Server stopped unexpectedly", map[string]any{"error": err.Error()})
	}
	stop()

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

func fatal(appLogger coreport.Logger, message string, err error) {
	appLogger.Error(message, map[string]any{"error": err.Error()})
	_ = appLogger.Flush()
	os.Exit(1)
}

func newClassifier(ctx context.Context, cfg config.AIConfig, appLogger coreport.Logger) (classifier.Classifier, error) {
	if !cfg.Enabled {
		appLogger.Info("AI classification disabled", nil)
		return ai.NewNoopClassifier(), nil
	}
	return ai.NewGeminiClassifier(ctx, ai.GeminiConfig{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
	}, appLogger)
}

// newBlobStore returns a nil store for the "none" driver; uploads then keep no locator
func newBlobStore(ctx context.Context, cfg config.StorageConfig, appLogger coreport.Logger) (storageport.BlobStore, func(), error) {
	noop := func() {}

	switch strings.ToLower(cfg.Driver) {
	case "gcs":
		store, err := storage.NewGCSStore(ctx, cfg.Bucket, cfg.Prefix, appLogger)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { _ = store.Close() }, nil
	case "local":
		store, err := storage.NewLocalStore(cfg.LocalPath, appLogger)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case "none", "":
		return nil, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or TC_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or TC_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or TC_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or TC_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Ingestion.Concurrency <= 0 {
		missingConfigs = append(missingConfigs, "ingestion.concurrency")
	}

	if cfg.AI.Enabled {
		if cfg.AI.APIKey == "" {
			missingConfigs = append(missingConfigs, "ai.apiKey (or TC_AI_API_KEY environment variable)")
		}
		if cfg.AI.Timeout == 0 {
			missingConfigs = append(missingConfigs, "ai.timeout")
		}
	}

	switch strings.ToLower(cfg.Storage.Driver) {
	case "gcs":
		if cfg.Storage.Bucket == "" {
			missingConfigs = append(missingConfigs, "storage.bucket (or TC_STORAGE_BUCKET environment variable)")
		}
	case "local":
		if cfg.Storage.LocalPath == "" {
			missingConfigs = append(missingConfigs, "storage.localPath")
		}
	case "none", "":
	default:
		return fmt.Errorf("invalid storage driver: %s, must be one of: gcs, local, none", cfg.Storage.Driver)
	}

	if cfg.Inbox.Enabled {
		if cfg.Inbox.Dir == "" {
			missingConfigs = append(missingConfigs, "inbox.dir")
		}
		if cfg.Inbox.EntityID == "" {
			missingConfigs = append(missingConfigs, "inbox.entityId (or TC_INBOX_ENTITY_ID environment variable)")
		}
	}

	if cfg.Auth.Enabled && cfg.Auth.HMACSecret == "" {
		missingConfigs = append(missingConfigs, "auth.hmacSecret (or TC_AUTH_HMAC_SECRET environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		if !cfg.Auth.Enabled {
			warnings = append(warnings, "auth.enabled is false; overrides will be attributed to the X-Actor header")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
