package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "tasks.db", cfg.DatabaseFile)
	require.Equal(t, service.DefaultAccessTTL, cfg.AccessTokenTTL)
	require.Equal(t, service.DefaultRefreshTTL, cfg.RefreshTokenTTL)
	require.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	require.Equal(t, 5, cfg.PageSize)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("TASKS_UPLOAD_ROOT", "/data/images")
	t.Setenv("TASKS_ACCESS_TOKEN_TTL", "5m")
	t.Setenv("TASKS_LOGIN_DELAY", "0s")
	t.Setenv("HOUSEKEEPING_INTERVAL", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "/data/images", cfg.UploadRoot)
	require.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	require.Zero(t, cfg.LoginDelay)
	require.Equal(t, 30*time.Minute, cfg.HousekeepingInterval)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown env", "ENV", "qa"},
		{"port out of range", "PORT", "70000"},
		{"bad duration", "SHUTDOWN_GRACE_PERIOD", "soon"},
		{"refresh not after access", "TASKS_REFRESH_TOKEN_TTL", "1m"},
		{"zero page size", "TASKS_PAGE_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
