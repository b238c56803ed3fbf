// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Storage Interfaces
//
//   - bookstore.Backend: Where a Store keeps its books (internal/bookstore/backend.go).
//     MemoryBackend is the default; books.Repository runs the same contract over
//     gorm and sqlite.
//
// ## HTTP Interfaces
//
//   - http.BookStore: The Store operations the API handlers use (internal/http/books.go)
//   - http.Pinger: Connectivity check for the health endpoint (internal/http/health.go)
//
// # Adding a Backend
//
//  1. Implement every method of bookstore.Backend. List must return books in
//     insertion order and Get/List must return copies.
//  2. Add a compile-time check to checks.go.
//  3. Teach services.OpenStore about the new config.StoreBackend value.
//
// Compile-time checks live in checks.go.
package interfaces
