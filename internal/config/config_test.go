package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "silent", cfg.Database.LogLevel)
	assert.Equal(t, DefaultPageSize, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, MaxPageSize, cfg.Pagination.MaxPageSize)
	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, "*/15 * * * *", cfg.Demo.ResetSchedule)
	assert.Empty(t, cfg.Demo.SeedPath)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("DATABASE_PATH", "file:books?mode=memory")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("MAX_PAGE_SIZE", "50")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("DEMO_RESET_SCHEDULE", "0 * * * *")

	cfg := NewConfig()

	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, StoreBackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "file:books?mode=memory", cfg.Database.Path)
	assert.Equal(t, 25, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.True(t, cfg.Demo.Enabled)
	assert.Equal(t, "0 * * * *", cfg.Demo.ResetSchedule)
}

func TestNewConfig_PaginationBounds(t *testing.T) {
	t.Setenv("DEFAULT_PAGE_SIZE", "0")
	t.Setenv("MAX_PAGE_SIZE", "3")

	cfg := NewConfig()

	assert.Equal(t, DefaultPageSize, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, DefaultPageSize, cfg.Pagination.MaxPageSize)
}

func TestParseBackend(t *testing.T) {
	assert.Equal(t, StoreBackendMemory, parseBackend("memory"))
	assert.Equal(t, StoreBackendSQLite, parseBackend(" sqlite "))
	assert.Equal(t, StoreBackendMemory, parseBackend("postgres"))
	assert.Equal(t, StoreBackendMemory, parseBackend(""))
}
