// Package state persists ledger entries in a key-value database.
package state

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/storage/compression"
	"github.com/LeJamon/goMemeLedger/internal/storage/database"
)

// DefaultCacheSize is the number of decoded entries kept in memory.
const DefaultCacheSize = 4096

// Options configure a Store.
type Options struct {
	// CacheSize bounds the entry cache. Zero selects DefaultCacheSize.
	CacheSize int

	// Compression names a registered compressor. Empty means "none".
	Compression string
}

// Store is the committed ledger state. Reads go through an LRU cache of
// decompressed entries; writes only happen through Commit.
type Store struct {
	db    database.DB
	cache *lru.Cache[[32]byte, []byte]
	comp  compression.Compressor
}

// New wraps db. The store takes ownership of db and closes it in Close.
func New(db database.DB, opts Options) (*Store, error) {
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.Compression == "" {
		opts.Compression = "none"
	}

	cache, err := lru.New[[32]byte, []byte](opts.CacheSize)
	if err != nil {
		return nil, err
	}
	comp, err := compression.Get(opts.Compression)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, cache: cache, comp: comp}, nil
}

// Read returns the committed entry at k, or nil when there is none.
// The returned slice must not be modified.
func (s *Store) Read(k keylet.Keylet) ([]byte, error) {
	return s.read(context.Background(), k.Key)
}

// Exists reports whether an entry is committed at k.
func (s *Store) Exists(k keylet.Keylet) (bool, error) {
	data, err := s.read(context.Background(), k.Key)
	return data != nil, err
}

func (s *Store) read(ctx context.Context, key [32]byte) ([]byte, error) {
	if data, ok := s.cache.Get(key); ok {
		return data, nil
	}

	raw, err := s.db.Read(ctx, key[:])
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state entry: %w", err)
	}

	data, err := s.comp.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompress state entry: %w", err)
	}
	s.cache.Add(key, data)
	return data, nil
}

// Commit writes every change in one atomic batch.
func (s *Store) Commit(ctx context.Context, changes []sle.Change) error {
	if len(changes) == 0 {
		return nil
	}

	ops := make([]database.BatchOperation, 0, len(changes))
	for _, c := range changes {
		key := append([]byte(nil), c.Key[:]...)
		if c.Data == nil {
			ops = append(ops, database.BatchOperation{Type: database.BatchDelete, Key: key})
			continue
		}
		packed, err := s.comp.Compress(c.Data)
		if err != nil {
			return fmt.Errorf("compress state entry: %w", err)
		}
		ops = append(ops, database.BatchOperation{Type: database.BatchPut, Key: key, Value: packed})
	}

	if err := s.db.Batch(ctx, ops); err != nil {
		// the cache may hold entries the failed batch was replacing
		s.cache.Purge()
		return fmt.Errorf("commit state: %w", err)
	}

	for _, c := range changes {
		if c.Data == nil {
			s.cache.Remove(c.Key)
		} else {
			s.cache.Add(c.Key, c.Data)
		}
	}
	return nil
}

// ForEach calls fn for every committed entry in key order until fn returns false.
func (s *Store) ForEach(ctx context.Context, fn func(key [32]byte, data []byte) bool) error {
	it, err := s.db.Iterator(ctx, nil, nil)
	if err != nil {
		return err
	}
	defer it.Close()

	for it.Next() {
		var key [32]byte
		if len(it.Key()) != len(key) {
			continue
		}
		copy(key[:], it.Key())

		data, err := s.comp.Decompress(it.Value())
		if err != nil {
			return fmt.Errorf("decompress state entry: %w", err)
		}
		if !fn(key, data) {
			break
		}
	}
	return it.Error()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.cache.Purge()
	return s.db.Close()
}
