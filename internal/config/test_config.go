package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration for integration tests.
// Backing services are optional: when TEST_REDIS_HOST is not set the memory backend is used,
// and the artificial delays are disabled so tests run fast.
func LoadTestConfig() *Config {
	// Try to load .env file (ignore error if file doesn't exist - it's optional)
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server.RateLimitPerMinute = 1000
	cfg.Logging.Level = "debug"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Storage.Backend = BackendMemory
	cfg.Device.Secret = "test-device-secret"
	cfg.Device.TokenExpiry = time.Hour
	cfg.Speech.Enabled = true
	cfg.Speech.BaseURL = "https://translate.google.com/translate_tts"
	cfg.Janitor.IdleTimeout = time.Hour

	if host := os.Getenv("TEST_REDIS_HOST"); host != "" {
		cfg.Storage.Backend = BackendRedis
		cfg.Redis.Host = host
		cfg.Redis.Port = 6379
	}

	return cfg
}
