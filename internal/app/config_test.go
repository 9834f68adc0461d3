package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, "sqlite", cfg.Database.Driver)

	require.Equal(t, "memory", cfg.Cache.Backend)
	require.Equal(t, 300*time.Second, cfg.Cache.RecordTTL)
	require.Zero(t, cfg.Cache.ListTTL)

	require.Equal(t, 10000, cfg.Pagination.DefaultLimit)
	require.Equal(t, 10000, cfg.Pagination.MaxLimit)

	require.True(t, cfg.Scheduler.Enabled)
	require.Equal(t, "40 11 * * *", cfg.Scheduler.Spec)
	require.Equal(t, "Asia/Kolkata", cfg.Scheduler.Timezone)
	require.Equal(t, []string{"/users/filter?skip=0&limit=10"}, cfg.Scheduler.Targets)

	require.True(t, cfg.Monitoring.Prometheus.Enabled)
	require.Equal(t, "/metrics", cfg.Monitoring.Prometheus.Endpoint)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JOBBOARD_SERVER_PORT", "9100")
	t.Setenv("JOBBOARD_CACHE_BACKEND", "database")
	t.Setenv("JOBBOARD_CACHE_RECORD_TTL", "1m")
	t.Setenv("JOBBOARD_PAGINATION_MAX_LIMIT", "500")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "database", cfg.Cache.Backend)
	require.Equal(t, time.Minute, cfg.Cache.RecordTTL)
	require.Equal(t, 500, cfg.Pagination.MaxLimit)
}

func TestConfigureLoggingEmptyLevel(t *testing.T) {
	require.NoError(t, ConfigureLogging(""))
	require.NoError(t, ConfigureLogging("debug"))
}
