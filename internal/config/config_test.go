package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"roomBooker/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
storage:
  driver: "redis"
  seed: true
redis:
  address: "cache:6379"
  key: "reservations"
http_server:
  address: "0.0.0.0:9090"
  timeout: 2s
calendar:
  start_hour: 7
  end_hour: 20
cors:
  allowed_origins: ["http://localhost:5173"]
retention:
  days: 30
  interval: 15m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.Seed)
	assert.Equal(t, "cache:6379", cfg.Redis.Address)
	assert.Equal(t, "reservations", cfg.Redis.Key)
	assert.Equal(t, 10, cfg.Redis.MaxRetries)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPServer.Address)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, 7, cfg.Calendar.StartHour)
	assert.Equal(t, 20, cfg.Calendar.EndHour)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30, cfg.Retention.Days)
	assert.Equal(t, 15*time.Minute, cfg.Retention.Interval)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: \"local\"\n"))
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 8, cfg.Calendar.StartHour)
	assert.Equal(t, 18, cfg.Calendar.EndHour)
	assert.Equal(t, 0, cfg.Retention.Days)
}

func TestLoad_FullDayHours(t *testing.T) {
	cfg, err := Load(writeConfig(t, "calendar:\n  start_hour: 0\n  end_hour: 24\n"))
	require.NoError(t, err)

	assert.Equal(t, calendar.Hours{Start: 0, End: 24}, cfg.Calendar.Hours())
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"unknown driver", "storage:\n  driver: \"mongo\"\n", nil},
		{"inverted hours", "calendar:\n  start_hour: 18\n  end_hour: 8\n", calendar.ErrInvalidHours},
		{"hours past midnight", "calendar:\n  start_hour: 8\n  end_hour: 25\n", calendar.ErrInvalidHours},
		{"negative start hour", "calendar:\n  start_hour: -1\n  end_hour: 8\n", calendar.ErrInvalidHours},
		{"negative retention", "retention:\n  days: -1\n", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "does not exist")
}
