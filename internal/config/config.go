package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds SurrealDB connection settings.
//
// URL is the full connection string; when it is empty the process still
// starts and the store runs in degraded mode. URLSet and NameSet record the
// literal presence of the DATABASE_URL and DATABASE_NAME variables for the
// diagnostics endpoint.
type DatabaseConfig struct {
	URL            string
	Namespace      string
	Database       string
	User           string
	Password       string
	ConnectTimeout time.Duration
	URLSet         bool
	NameSet        bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables with sensible defaults.
// Missing or malformed values never fail the load; they fall back.
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			// getIntEnv falls back on non-numeric values, so a garbage PORT
			// still yields a listenable address.
			Port:            strconv.Itoa(getIntEnv("PORT", 8000)),
			Env:             getEnv("SERVER_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			Namespace:      getEnv("DATABASE_NAMESPACE", "sanctuary"),
			Database:       getEnv("DATABASE_NAME", getEnv("DB_NAME", "sanctuary")),
			User:           getEnv("DATABASE_USER", "root"),
			Password:       getEnv("DATABASE_PASS", "root"),
			ConnectTimeout: getDurationEnv("DATABASE_CONNECT_TIMEOUT", 5*time.Second),
			URLSet:         os.Getenv("DATABASE_URL") != "",
			NameSet:        os.Getenv("DATABASE_NAME") != "",
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// SlogLevel maps the configured level name onto a slog.Level.
// Unknown names fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks that the loaded configuration is coherent.
// It returns an error describing all validation failures, or nil if valid.
// An absent DATABASE_URL is deliberately NOT a validation failure; the
// process serves in degraded mode without a store.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a valid port number, got '%s'", c.Server.Port))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_READ_TIMEOUT must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_WRITE_TIMEOUT must be positive"))
	}

	// Database validation
	if c.Database.URL != "" && !hasSurrealScheme(c.Database.URL) {
		errs = append(errs, fmt.Errorf("DATABASE_URL must use a ws, wss, http, or https scheme, got '%s'", c.Database.URL))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DATABASE_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DATABASE_NAME is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func hasSurrealScheme(url string) bool {
	for _, scheme := range []string{"ws://", "wss://", "http://", "https://"} {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
