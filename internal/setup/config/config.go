package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// Current version of the config files.
const (
	CurrentCommonVersion = 1
	CurrentRESTVersion   = 1
)

// Config represents the entire application configuration.
type Config struct {
	Common CommonConfig
	REST   RESTConfig
}

// CommonConfig contains configuration shared between every command.
type CommonConfig struct {
	// Version of the common config.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	Engine     Engine     `koanf:"engine"`
	Tracing    Tracing    `koanf:"tracing"`
}

// RESTConfig contains REST server specific configuration.
type RESTConfig struct {
	// Version of the rest config.
	Version int    `koanf:"version"`
	Server  Server `koanf:"server"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Maximum log sessions to keep.
	MaxLogsToKeep int `koanf:"max_logs_to_keep"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	// Database hostname.
	Host string `koanf:"host"`
	// Database port.
	Port int `koanf:"port"`
	// Database username.
	User string `koanf:"user"`
	// Database password.
	Password string `koanf:"password"`
	// Database name.
	DBName string `koanf:"db_name"`
	// Maximum open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	// Whether notifications are pushed to Redis. A no-op notifier is used otherwise.
	Enabled bool `koanf:"enabled"`
	// Redis hostname.
	Host string `koanf:"host"`
	// Redis port.
	Port int `koanf:"port"`
	// Redis username.
	Username string `koanf:"username"`
	// Redis password.
	Password string `koanf:"password"`
	// List key that receives notification payloads.
	NotificationKey string `koanf:"notification_key"`
}

// Tracing contains OpenTelemetry export configuration.
type Tracing struct {
	// Whether spans are exported to Uptrace.
	Enabled bool `koanf:"enabled"`
	// Uptrace project DSN.
	DSN string `koanf:"dsn"`
}

// Engine contains the engagement engine tuning values.
type Engine struct {
	// Points per action when no custom amount is supplied.
	Points Points `koanf:"points"`
	// Upvote counts that are multiples of this value notify the author.
	MilestoneStep int64 `koanf:"milestone_step"`
}

// Points holds the default score of each action type.
type Points struct {
	PostCreated    int64 `koanf:"post_created"`
	CommentCreated int64 `koanf:"comment_created"`
	VoteCast       int64 `koanf:"vote_cast"`
	QuestCompleted int64 `koanf:"quest_completed"`
}

// Server contains HTTP server configuration.
type Server struct {
	// Listen host.
	Host string `koanf:"host"`
	// Listen port.
	Port int `koanf:"port"`
	// Read timeout in seconds.
	ReadTimeout int `koanf:"read_timeout"`
	// Write timeout in seconds.
	WriteTimeout int `koanf:"write_timeout"`
	// Whether /metrics is served.
	EnableMetrics bool `koanf:"enable_metrics"`
}

// DefaultEngine returns the scoring defaults used when the config leaves them out.
func DefaultEngine() Engine {
	return Engine{
		Points: Points{
			PostCreated:    10,
			CommentCreated: 5,
			VoteCast:       1,
			QuestCompleted: 0,
		},
		MilestoneStep: 10,
	}
}

// SearchPaths returns the directories searched for config files, in priority order.
func SearchPaths() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return []string{
		".lounge",
		homeDir + "/.lounge/config",
		"/etc/lounge/config",
		"/app/config",
		"config",
		".",
	}, nil
}

// LoadConfig loads the configuration from the default search paths.
func LoadConfig() (*Config, string, error) {
	paths, err := SearchPaths()
	if err != nil {
		return nil, "", err
	}

	return LoadConfigFrom(paths)
}

// LoadConfigFrom loads common.toml and rest.toml from the first path that holds each of them.
// It returns the config and the directory the common config was read from.
func LoadConfigFrom(paths []string) (*Config, string, error) {
	config := Config{
		Common: CommonConfig{Engine: DefaultEngine()},
	}

	usedConfigPath, err := loadFile(paths, "common", &config.Common)
	if err != nil {
		return nil, "", err
	}

	if _, err := loadFile(paths, "rest", &config.REST); err != nil {
		return nil, "", err
	}

	// Check versions for each config file
	if err := checkConfigVersion("common", config.Common.Version, CurrentCommonVersion); err != nil {
		return nil, "", err
	}

	if err := checkConfigVersion("rest", config.REST.Version, CurrentRESTVersion); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

// loadFile reads the first <name>.toml found in paths into out.
func loadFile(paths []string, name string, out any) (string, error) {
	k := koanf.New(".")

	for _, path := range paths {
		configPath := fmt.Sprintf("%s/%s.toml", path, name)
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", configPath, err)
		}

		if err := k.Unmarshal("", out); err != nil {
			return "", fmt.Errorf("error unmarshaling %s.toml: %w", name, err)
		}

		return path, nil
	}

	return "", fmt.Errorf("%w: %s.toml", ErrConfigFileNotFound, name)
}

// checkConfigVersion checks if the config file version is correct.
func checkConfigVersion(name string, current, expected int) error {
	if current == 0 {
		return fmt.Errorf("%w: %s.toml", ErrConfigVersionMissing, name)
	}

	if current != expected {
		return fmt.Errorf("%w: %s.toml (got: %d, expected: %d)",
			ErrConfigVersionMismatch, name, current, expected)
	}

	return nil
}
