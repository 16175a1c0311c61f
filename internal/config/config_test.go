package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"SERVER_PORT", "RATE_LIMIT_PER_MINUTE", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS",
		"STORAGE_BACKEND", "SQLITE_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"DEVICE_TOKEN_SECRET", "DEVICE_TOKEN_EXPIRY", "AUTH_DELAY", "TUTOR_DELAY",
		"SPEECH_ENABLED", "SPEECH_BASE_URL", "JANITOR_SCHEDULE", "IDLE_TIMEOUT",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVICE_TOKEN_SECRET", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "padho.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, 30*24*time.Hour, cfg.Device.TokenExpiry)
	assert.Equal(t, 1500*time.Millisecond, cfg.Delays.Auth)
	assert.Equal(t, 1500*time.Millisecond, cfg.Delays.Tutor)
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, "https://translate.google.com/translate_tts", cfg.Speech.BaseURL)
	assert.Equal(t, "@every 10m", cfg.Janitor.Schedule)
	assert.Equal(t, 2*time.Hour, cfg.Janitor.IdleTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVICE_TOKEN_SECRET", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://padho.ai ,")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("AUTH_DELAY", "0s")
	t.Setenv("TUTOR_DELAY", "250ms")
	t.Setenv("SPEECH_ENABLED", "false")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://padho.ai"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, time.Duration(0), cfg.Delays.Auth)
	assert.Equal(t, 250*time.Millisecond, cfg.Delays.Tutor)
	assert.False(t, cfg.Speech.Enabled)
}

func TestLoad_MySQL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVICE_TOKEN_SECRET", "secret")
	t.Setenv("STORAGE_BACKEND", "mysql")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "padho")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "padho")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "padho:pw@tcp(db:3306)/padho?parseTime=true&charset=utf8mb4&multiStatements=true", cfg.DSN())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		errorContains string
	}{
		{name: "missing secret", env: map[string]string{}, errorContains: "DEVICE_TOKEN_SECRET is required"},
		{name: "invalid port", env: map[string]string{"DEVICE_TOKEN_SECRET": "s", "SERVER_PORT": "eighty"}, errorContains: "invalid SERVER_PORT"},
		{name: "unknown backend", env: map[string]string{"DEVICE_TOKEN_SECRET": "s", "STORAGE_BACKEND": "postgres"}, errorContains: "invalid STORAGE_BACKEND"},
		{name: "mysql without host", env: map[string]string{"DEVICE_TOKEN_SECRET": "s", "STORAGE_BACKEND": "mysql"}, errorContains: "DB_HOST is required"},
		{name: "negative delay", env: map[string]string{"DEVICE_TOKEN_SECRET": "s", "TUTOR_DELAY": "-1s"}, errorContains: "invalid TUTOR_DELAY"},
		{name: "malformed expiry", env: map[string]string{"DEVICE_TOKEN_SECRET": "s", "DEVICE_TOKEN_EXPIRY": "forever"}, errorContains: "invalid DEVICE_TOKEN_EXPIRY"},
		{name: "malformed bool", env: map[string]string{"DEVICE_TOKEN_SECRET": "s", "SPEECH_ENABLED": "sometimes"}, errorContains: "invalid SPEECH_ENABLED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.Nil(t, cfg)
		})
	}
}
