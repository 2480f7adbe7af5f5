package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the SQLite connection that backs presets,
// sessions and settings. Implementations open the file on the first DB call.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	// IsInitialized reports whether the file is open right now.
	IsInitialized() bool
	// Path is the database file location, for diagnostics.
	Path() string
}
