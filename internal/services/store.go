package services

import (
	"fmt"
	"log"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
)

// StoreHandle is a book store together with the resources backing it.
// DB is nil for the memory backend.
type StoreHandle struct {
	Store   *bookstore.Store
	DB      *database.Database
	Backend config.StoreBackend
}

// OpenStore builds a store over the configured backend.
func OpenStore(backend config.StoreBackend, dbCfg config.Database) (*StoreHandle, error) {
	switch backend {
	case config.StoreBackendSQLite:
		db, err := database.NewDatabase(dbCfg.Path, database.ParseLogLevel(dbCfg.LogLevel))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite backend: %w", err)
		}
		log.Printf("Using sqlite backend (%s)", dbCfg.Path)
		return &StoreHandle{
			Store:   bookstore.NewWithBackend(db.Books()),
			DB:      db,
			Backend: backend,
		}, nil
	case config.StoreBackendMemory, "":
		return &StoreHandle{
			Store:   bookstore.New(),
			Backend: config.StoreBackendMemory,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}

// Close releases the database connection, if any.
func (h *StoreHandle) Close() error {
	if h.DB == nil {
		return nil
	}
	return h.DB.Close()
}
