// Package database opens the sqlite database used by the "sqlite" store
// backend.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── books/           # Book rows; implements bookstore.Backend
//
// # Usage
//
//	db, err := database.NewDatabase(config.DefaultDatabasePath, logger.Silent)
//	store := bookstore.NewWithBackend(db.Books())
//
// config.DefaultDatabasePath is an in-memory database, so the sqlite backend behaves
// like the map backend across restarts: it starts empty every time.
package database
