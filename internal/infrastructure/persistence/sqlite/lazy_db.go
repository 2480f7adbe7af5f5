package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/logging"
)

// ErrClosed is returned by LazyDB.DB after Close.
var ErrClosed = errors.New("database closed")

// LazyDB implements port.DatabaseProvider. The file is opened and migrated
// on the first DB call. A failed open is retried on the next call, so a
// locked or missing directory does not poison the whole process.
type LazyDB struct {
	path   string
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the open connection, opening it first if needed.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrClosed
	}
	if l.db != nil {
		return l.db, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("path", l.path).Msg("opening database")

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("database open failed")
		return nil, fmt.Errorf("database initialization failed: %w", err)
	}
	l.db = db
	return db, nil
}

// Close closes the connection if it was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	db := l.db
	l.db = nil
	return Close(db)
}

// IsInitialized reports whether the database is currently open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}
