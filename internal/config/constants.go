package config

const (
	// DefaultDatabasePath is an in-memory sqlite DSN; the sqlite backend
	// starts empty on every run.
	DefaultDatabasePath = "file::memory:?cache=shared"

	// DefaultPageSize is used when a request does not ask for a page size.
	DefaultPageSize = 10

	// MaxPageSize caps page sizes requested over HTTP.
	MaxPageSize = 100
)
