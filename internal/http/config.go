package http

import (
	"github.com/mrlokans/bookshelf/internal/demo"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store BookStore

	// Database is pinged by the health check; nil for the memory backend
	Database Pinger
	Backend  string

	// Pagination limits for GET /api/books
	DefaultPageSize int
	MaxPageSize     int

	// Application info
	Version string

	// Demo mode
	DemoMiddleware *demo.Middleware
}
