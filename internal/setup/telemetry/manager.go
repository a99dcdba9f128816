package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceType represents the type of service being initialized.
type ServiceType int

const (
	ServiceREST ServiceType = iota
	ServiceBatch
	ServiceDB
)

// String returns the component name used in log paths.
func (s ServiceType) String() string {
	switch s {
	case ServiceREST:
		return "rest"
	case ServiceBatch:
		return "batch"
	case ServiceDB:
		return "db"
	default:
		return "unknown"
	}
}

// Manager handles the creation and management of log files and directories.
// Every program run writes into its own timestamped session directory.
type Manager struct {
	instanceID        string    // Unique identifier for this program instance
	componentName     string    // Component identifier for this instance
	currentSessionDir string    // Path to the current session's log directory
	logDir            string    // Base directory for all logs
	level             string    // Logging level (debug, info, warn, error)
	maxLogsToKeep     int       // Maximum number of log sessions to retain
	stdout            bool      // Whether logs are mirrored to stdout
	files             []*os.File
}

// NewManager creates a new Manager instance.
func NewManager(serviceType ServiceType, logDir string, debugCfg *config.Debug) *Manager {
	return &Manager{
		instanceID:    uuid.New().String(),
		componentName: serviceType.String(),
		logDir:        logDir,
		level:         debugCfg.LogLevel,
		maxLogsToKeep: max(debugCfg.MaxLogsToKeep, 1),
		stdout:        true,
	}
}

// DisableStdout stops mirroring log output to stdout.
func (lm *Manager) DisableStdout() {
	lm.stdout = false
}

// Stop flushes and closes the log files of the session.
func (lm *Manager) Stop() {
	for _, file := range lm.files {
		_ = file.Sync()
		_ = file.Close()
	}
	lm.files = nil
}

// GetLoggers initializes the main and database loggers.
// Returns separate loggers for main application and database logging.
func (lm *Manager) GetLoggers() (*zap.Logger, *zap.Logger, error) {
	if err := lm.setupLogDirectories(); err != nil {
		return nil, nil, err
	}

	mainLogger, err := lm.initLogger(filepath.Join(lm.currentSessionDir, "main.log"), lm.stdout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize main logger: %w", err)
	}

	dbLogger, err := lm.initLogger(filepath.Join(lm.currentSessionDir, "database.log"), false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database logger: %w", err)
	}

	fields := []zap.Field{
		zap.String("component", lm.componentName),
		zap.String("instance_id", lm.instanceID),
	}

	return mainLogger.With(fields...), dbLogger.With(fields...), nil
}

// GetCurrentSessionDir returns the current session directory.
func (lm *Manager) GetCurrentSessionDir() string {
	return lm.currentSessionDir
}

// GetInstanceID returns the unique instance identifier for this program run.
func (lm *Manager) GetInstanceID() string {
	return lm.instanceID
}

// setupLogDirectories creates and manages the log directory structure.
// It ensures the base directory exists, rotates old logs, and creates a new session directory.
func (lm *Manager) setupLogDirectories() error {
	// Ensure base log directory exists
	if err := os.MkdirAll(lm.logDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Keep room for the session about to be created
	if err := lm.rotateLogSessions(lm.maxLogsToKeep - 1); err != nil {
		return fmt.Errorf("failed to rotate log sessions: %w", err)
	}

	sessionName := fmt.Sprintf("%s_%s_%s",
		time.Now().Format("2006-01-02_15-04-05"), lm.componentName, lm.instanceID[:8])

	lm.currentSessionDir = filepath.Join(lm.logDir, sessionName)
	if err := os.MkdirAll(lm.currentSessionDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	return nil
}

// initLogger creates a new zap logger writing to the given file and optionally stdout.
func (lm *Manager) initLogger(logPath string, withStdout bool) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(lm.level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", logPath, err)
	}
	lm.files = append(lm.files, file)

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(file), zapLevel),
		NewTraceCore(zapLevel, otel.Tracer("logs")),
	}

	if withStdout {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stdout),
			zapLevel,
		))
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// rotateLogSessions removes the oldest sessions until at most keep remain.
func (lm *Manager) rotateLogSessions(keep int) error {
	sessions, err := filepath.Glob(filepath.Join(lm.logDir, "*"))
	if err != nil {
		return err
	}

	if len(sessions) <= keep {
		return nil
	}

	// Sort sessions by modification time (oldest first)
	sort.Slice(sessions, func(i, j int) bool {
		iInfo, _ := os.Stat(sessions[i])
		jInfo, _ := os.Stat(sessions[j])

		return iInfo.ModTime().Before(jInfo.ModTime())
	})

	toDelete := len(sessions) - keep
	for i := range toDelete {
		if err := os.RemoveAll(sessions[i]); err != nil {
			return err
		}
	}

	return nil
}
