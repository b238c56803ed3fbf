package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type StoreBackend string

const (
	StoreBackendMemory StoreBackend = "memory" // Map-backed store (default)
	StoreBackendSQLite StoreBackend = "sqlite" // gorm + sqlite, in-memory by default
)

type (
	Config struct {
		HTTP
		Global
		Store
		Database
		Pagination
		Demo
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Store struct {
		Backend StoreBackend
	}
	Database struct {
		Path     string // sqlite DSN
		LogLevel string // silent, error, warn, info
	}
	Pagination struct {
		DefaultPageSize int
		MaxPageSize     int
	}
	Demo struct {
		Enabled       bool   // Seed sample books and block writes
		ResetSchedule string // Cron format: "*/15 * * * *" = every 15 minutes
		SeedPath      string // Optional YAML seed file, embedded seed when empty
	}
)

// ShutdownTimeout returns the graceful shutdown budget.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Global.ShutdownTimeoutInSeconds) * time.Second
}

// parseBackend falls back to the memory backend for unknown values.
func parseBackend(value string) StoreBackend {
	switch StoreBackend(strings.ToLower(strings.TrimSpace(value))) {
	case StoreBackendSQLite:
		return StoreBackendSQLite
	default:
		return StoreBackendMemory
	}
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("store_backend", string(StoreBackendMemory))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "silent")
	v.SetDefault("default_page_size", DefaultPageSize)
	v.SetDefault("max_page_size", MaxPageSize)

	// Demo mode defaults
	v.SetDefault("demo_mode", false)
	v.SetDefault("demo_reset_schedule", "*/15 * * * *") // Every 15 minutes
	v.SetDefault("demo_seed_path", "")

	cfg := &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Store: Store{
			Backend: parseBackend(v.GetString("STORE_BACKEND")),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Pagination: Pagination{
			DefaultPageSize: v.GetInt("DEFAULT_PAGE_SIZE"),
			MaxPageSize:     v.GetInt("MAX_PAGE_SIZE"),
		},
		Demo: Demo{
			Enabled:       v.GetBool("DEMO_MODE"),
			ResetSchedule: v.GetString("DEMO_RESET_SCHEDULE"),
			SeedPath:      v.GetString("DEMO_SEED_PATH"),
		},
	}

	if cfg.Pagination.DefaultPageSize < 1 {
		cfg.Pagination.DefaultPageSize = DefaultPageSize
	}
	if cfg.Pagination.MaxPageSize < cfg.Pagination.DefaultPageSize {
		cfg.Pagination.MaxPageSize = cfg.Pagination.DefaultPageSize
	}

	return cfg
}
