package redis_test

import (
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/redis"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
	"go.uber.org/zap"
)

func TestManagerReusesClients(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)

	manager := redis.NewManager(&config.Redis{
		Host: mr.Host(),
		Port: mustPort(t, mr),
	}, zap.NewNop())
	defer manager.Close()

	first, err := manager.GetClient(redis.NotificationDBIndex)
	require.NoError(t, err)

	second, err := manager.GetClient(redis.NotificationDBIndex)
	require.NoError(t, err)
	assert.Same(t, first, second)

	require.NoError(t, first.Do(t.Context(), first.B().Ping().Build()).Error())
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	return port
}
