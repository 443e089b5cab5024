package state

import (
	"fmt"
	"path/filepath"

	"github.com/LeJamon/goMemeLedger/internal/storage/database"
	"github.com/LeJamon/goMemeLedger/internal/storage/database/leveldb"
	"github.com/LeJamon/goMemeLedger/internal/storage/database/pebble"
)

// BackendConfig selects and locates the key-value backend.
type BackendConfig struct {
	// Type is one of database.BackendPebble, BackendLevelDB or BackendMemory.
	Type string
	Path string

	// CacheSize is the backend block cache in bytes.
	CacheSize int64
}

// OpenDB opens the configured backend.
func OpenDB(cfg BackendConfig) (database.DB, error) {
	switch cfg.Type {
	case database.BackendPebble:
		return pebble.Open(filepath.Join(cfg.Path, "state.pebble"), cfg.CacheSize)
	case database.BackendLevelDB:
		return leveldb.Open(filepath.Join(cfg.Path, "state.leveldb"), int(cfg.CacheSize))
	case database.BackendMemory, "":
		return pebble.Open("", cfg.CacheSize)
	default:
		return nil, fmt.Errorf("%w: %q", database.ErrUnknownBackend, cfg.Type)
	}
}

// Open opens the configured backend and wraps it in a Store.
func Open(cfg BackendConfig, opts Options) (*Store, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	store, err := New(db, opts)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Store {
	store, err := Open(BackendConfig{Type: database.BackendMemory}, Options{})
	if err != nil {
		panic(fmt.Sprintf("state: open memory store: %v", err))
	}
	return store
}
