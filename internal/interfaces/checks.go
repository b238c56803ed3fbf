package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/http"
)

// =============================================================================
// Storage Backends
// =============================================================================

// Backend implementations
var _ bookstore.Backend = (*bookstore.MemoryBackend)(nil)
var _ bookstore.Backend = (*books.Repository)(nil)

// =============================================================================
// HTTP Dependencies
// =============================================================================

// BookStore implementations
var _ http.BookStore = (*bookstore.Store)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)
