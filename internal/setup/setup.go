package setup

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/team-Roy/prototype-sub000/internal/database"
	"github.com/team-Roy/prototype-sub000/internal/database/migrations"
	"github.com/team-Roy/prototype-sub000/internal/notify"
	"github.com/team-Roy/prototype-sub000/internal/redis"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"github.com/uptrace/bun/migrate"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config       *config.Config       // Application configuration
	Logger       *zap.Logger          // Main application logger
	DBLogger     *zap.Logger          // Database-specific logger
	DB           database.Client      // Database connection pool
	RedisManager *redis.Manager       // Redis connection manager, nil when Redis is disabled
	Dispatcher   *notify.Dispatcher   // Background notification delivery
	Registry     *prometheus.Registry // Metrics registry served at /metrics
	Metrics      *telemetry.Metrics   // Engine counters
	LogManager   *telemetry.Manager   // Log management system
	tracing      bool                 // Whether spans are exported to Uptrace
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, serviceType telemetry.ServiceType, logDir string) (*App, error) {
	// Load app configuration
	cfg, _, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	return InitializeAppWithConfig(ctx, cfg, serviceType, logDir)
}

// InitializeAppWithConfig bootstraps the application from an already loaded configuration.
// On failure every component started so far is released and the error is written to the log.
func InitializeAppWithConfig(
	ctx context.Context, cfg *config.Config, serviceType telemetry.ServiceType, logDir string,
) (*App, error) {
	app := &App{Config: cfg}

	// Tracing is configured before the loggers so error spans are exported
	app.tracing = cfg.Common.Tracing.Enabled && cfg.Common.Tracing.DSN != ""
	if app.tracing {
		uptrace.ConfigureOpentelemetry(
			uptrace.WithDSN(cfg.Common.Tracing.DSN),
			uptrace.WithServiceName("lounge-"+serviceType.String()),
		)
	}

	// Logging system is initialized next to capture setup issues
	app.LogManager = telemetry.NewManager(serviceType, logDir, &cfg.Common.Debug)

	logger, dbLogger, err := app.LogManager.GetLoggers()
	if err != nil {
		app.Cleanup()
		return nil, err
	}
	app.Logger = logger
	app.DBLogger = dbLogger.Named("database")

	if err := app.initServices(ctx); err != nil {
		app.Logger.Error("Failed to initialize application", zap.Error(err))
		app.Cleanup()
		return nil, err
	}

	return app, nil
}

// initServices starts metrics, notifications and the database on an app with working loggers.
func (s *App) initServices(ctx context.Context) error {
	cfg := s.Config

	// Metrics live on a private registry with the runtime collectors
	s.Registry = prometheus.NewRegistry()
	s.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	s.Metrics = telemetry.NewMetrics(s.Registry)

	// Notifications go to Redis when enabled and are dropped otherwise
	var notifier notify.Notifier = notify.Noop{}

	if cfg.Common.Redis.Enabled {
		s.RedisManager = redis.NewManager(&cfg.Common.Redis, s.Logger)

		client, err := s.RedisManager.GetClient(redis.NotificationDBIndex)
		if err != nil {
			return err
		}

		notifier = notify.NewRedisNotifier(client, cfg.Common.Redis.NotificationKey, s.Logger)
	} else {
		s.Logger.Warn("Redis is disabled, vote milestone notifications will be dropped")
	}

	s.Dispatcher = notify.NewDispatcher(notifier, s.Logger)

	// Initialize database with migration check
	db, err := checkAndRunMigrations(ctx, &cfg.Common.PostgreSQL, s.DBLogger, database.Options{
		Engine:     cfg.Common.Engine,
		Dispatcher: s.Dispatcher,
		Metrics:    s.Metrics,
	})
	if err != nil {
		return err
	}
	s.DB = db

	return nil
}

// Cleanup ensures graceful shutdown of all components in reverse initialization order.
// Logs but does not fail on cleanup errors to ensure all components get cleanup attempts.
// Components that were never started are skipped.
func (s *App) Cleanup() {
	// Let in-flight notifications finish before their connections go away
	if s.Dispatcher != nil {
		s.Dispatcher.Wait()
	}

	// Sync buffered logs before shutdown
	if s.Logger != nil {
		if err := s.Logger.Sync(); err != nil {
			log.Printf("Failed to sync logger: %v", err)
		}
	}

	if s.DBLogger != nil {
		if err := s.DBLogger.Sync(); err != nil {
			log.Printf("Failed to sync DB logger: %v", err)
		}
	}

	// Close database connections
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}

	// Close Redis connections last as other components might need it during cleanup
	if s.RedisManager != nil {
		s.RedisManager.Close()
	}

	// Flush pending spans
	if s.tracing {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := uptrace.Shutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracing: %v", err)
		}
	}

	if s.LogManager != nil {
		s.LogManager.Stop()
	}
}

// checkAndRunMigrations runs database migrations if needed.
func checkAndRunMigrations(
	ctx context.Context, cfg *config.PostgreSQL, dbLogger *zap.Logger, opts database.Options,
) (database.Client, error) {
	tempDB, err := database.NewConnection(ctx, cfg, dbLogger, false, opts)
	if err != nil {
		return nil, err
	}

	migrator := migrate.NewMigrator(tempDB.DB(), migrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		tempDB.Close()
		return nil, fmt.Errorf("failed to initialize migrations: %w", err)
	}

	ms, err := migrator.MigrationsWithStatus(ctx)
	if err != nil {
		tempDB.Close()
		return nil, fmt.Errorf("failed to check migration status: %w", err)
	}

	unapplied := ms.Unapplied()
	if len(unapplied) == 0 {
		return tempDB, nil
	}

	log.Println("Database migrations are pending. Would you like to run them now? (y/N)")

	var response string

	_, _ = fmt.Scanln(&response)

	if response != "y" && response != "Y" {
		tempDB.Close()
		log.Fatalf("Closing program due to incomplete migrations")
	}

	tempDB.Close()

	return database.NewConnection(ctx, cfg, dbLogger, true, opts)
}
