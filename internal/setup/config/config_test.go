package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
)

const restTOML = `
version = 1

[server]
host = "127.0.0.1"
port = 8080
read_timeout = 10
write_timeout = 15
enable_metrics = true
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadConfigFrom(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "common.toml", `
version = 1

[postgresql]
host = "db"
port = 5432
db_name = "lounge"

[engine.points]
post_created = 20
`)
	writeFile(t, dir, "rest.toml", restTOML)

	cfg, used, err := config.LoadConfigFrom([]string{filepath.Join(dir, "missing"), dir})
	require.NoError(t, err)

	assert.Equal(t, dir, used)
	assert.Equal(t, "db", cfg.Common.PostgreSQL.Host)
	assert.Equal(t, 5432, cfg.Common.PostgreSQL.Port)
	assert.Equal(t, 8080, cfg.REST.Server.Port)
	assert.True(t, cfg.REST.Server.EnableMetrics)

	// Overridden value replaces the default, untouched values keep theirs
	assert.Equal(t, int64(20), cfg.Common.Engine.Points.PostCreated)
	assert.Equal(t, int64(5), cfg.Common.Engine.Points.CommentCreated)
	assert.Equal(t, int64(10), cfg.Common.Engine.MilestoneStep)
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := config.LoadConfigFrom([]string{t.TempDir()})
	require.ErrorIs(t, err, config.ErrConfigFileNotFound)
}

func TestLoadConfigFromVersionChecks(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "common.toml", "[debug]\nlog_level = \"info\"\n")
		writeFile(t, dir, "rest.toml", restTOML)

		_, _, err := config.LoadConfigFrom([]string{dir})
		require.ErrorIs(t, err, config.ErrConfigVersionMissing)
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "common.toml", "version = 99\n")
		writeFile(t, dir, "rest.toml", restTOML)

		_, _, err := config.LoadConfigFrom([]string{dir})
		require.ErrorIs(t, err, config.ErrConfigVersionMismatch)
	})
}
