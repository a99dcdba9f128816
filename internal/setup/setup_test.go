package setup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/setup"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
)

// unreachableConfig points every backend at a closed local port.
func unreachableConfig(redisEnabled bool) *config.Config {
	return &config.Config{
		Common: config.CommonConfig{
			Version: config.CurrentCommonVersion,
			Debug:   config.Debug{LogLevel: "info", MaxLogsToKeep: 2},
			PostgreSQL: config.PostgreSQL{
				Host:         "127.0.0.1",
				Port:         1,
				User:         "lounge",
				DBName:       "lounge",
				MaxOpenConns: 1,
				MaxIdleConns: 1,
			},
			Redis: config.Redis{
				Enabled: redisEnabled,
				Host:    "127.0.0.1",
				Port:    1,
			},
			Engine: config.DefaultEngine(),
		},
		REST: config.RESTConfig{Version: config.CurrentRESTVersion},
	}
}

func TestInitializeAppReleasesOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		redisEnabled bool
	}{
		{"database unreachable", false},
		{"redis unreachable", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logDir := t.TempDir()

			app, err := setup.InitializeAppWithConfig(
				t.Context(), unreachableConfig(tt.redisEnabled), telemetry.ServiceBatch, logDir,
			)
			require.Error(t, err)
			assert.Nil(t, app)

			// The log session was flushed and closed with the failure recorded
			logs, err := filepath.Glob(filepath.Join(logDir, "*", "main.log"))
			require.NoError(t, err)
			require.Len(t, logs, 1)

			content, err := os.ReadFile(logs[0])
			require.NoError(t, err)
			assert.Contains(t, string(content), "Failed to initialize application")
		})
	}
}

func TestCleanupSkipsMissingComponents(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		(&setup.App{}).Cleanup()
	})
}
