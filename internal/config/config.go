// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends understood by STORAGE_BACKEND
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Device   DeviceConfig
	Delays   DelayConfig
	Speech   SpeechConfig
	Janitor  JanitorConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// StorageConfig selects the key-value backend profiles are kept in
type StorageConfig struct {
	Backend    string
	SQLitePath string
}

// DatabaseConfig holds MySQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DeviceConfig holds device token settings
type DeviceConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

// DelayConfig holds the artificial latencies of login, signup and the tutor
type DelayConfig struct {
	Auth  time.Duration
	Tutor time.Duration
}

// SpeechConfig holds text-to-speech settings
type SpeechConfig struct {
	Enabled bool
	BaseURL string
}

// JanitorConfig holds settings of the idle state cleanup job
type JanitorConfig struct {
	Schedule    string
	IdleTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}

	// Logging configuration
	cfg.Logging.Level = stringEnv("LOG_LEVEL", "info")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Storage configuration
	cfg.Storage.Backend = strings.ToLower(stringEnv("STORAGE_BACKEND", BackendMemory))
	cfg.Storage.SQLitePath = stringEnv("SQLITE_PATH", "padho.db")
	switch cfg.Storage.Backend {
	case BackendMemory, BackendRedis, BackendSQLite:
	case BackendMySQL:
		if err := loadDatabase(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND: %s", cfg.Storage.Backend)
	}

	// Redis configuration (used by the redis backend)
	cfg.Redis.Host = stringEnv("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD") // optional
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Device token configuration
	cfg.Device.Secret = os.Getenv("DEVICE_TOKEN_SECRET")
	if cfg.Device.Secret == "" {
		return nil, fmt.Errorf("DEVICE_TOKEN_SECRET is required")
	}
	if cfg.Device.TokenExpiry, err = durationEnv("DEVICE_TOKEN_EXPIRY", 30*24*time.Hour); err != nil {
		return nil, err
	}

	// Artificial latencies
	if cfg.Delays.Auth, err = durationEnv("AUTH_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.Delays.Tutor, err = durationEnv("TUTOR_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}

	// Speech configuration
	if cfg.Speech.Enabled, err = boolEnv("SPEECH_ENABLED", true); err != nil {
		return nil, err
	}
	cfg.Speech.BaseURL = stringEnv("SPEECH_BASE_URL", "https://translate.google.com/translate_tts")

	// Janitor configuration
	cfg.Janitor.Schedule = stringEnv("JANITOR_SCHEDULE", "@every 10m")
	if cfg.Janitor.IdleTimeout, err = durationEnv("IDLE_TIMEOUT", 2*time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDatabase reads the MySQL settings, all of which are required
func loadDatabase(cfg *Config) error {
	cfg.Database.Host = os.Getenv("DB_HOST")
	if cfg.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	cfg.Database.User = os.Getenv("DB_USER")
	if cfg.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}

	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	if cfg.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}

	cfg.Database.DBName = os.Getenv("DB_NAME")
	if cfg.Database.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return nil
}

// DSN returns the MySQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the Redis host:port pair
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// parseOrigins parses comma-separated origins, defaulting to allow all
func parseOrigins(corsOrigins string) []string {
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	// If no valid origins found, default to allow all
	if len(allowed) == 0 {
		return []string{"*"}
	}
	return allowed
}

func stringEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func intEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return n, nil
}

func durationEnv(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", name)
	}
	return d, nil
}

func boolEnv(name string, def bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return b, nil
}
