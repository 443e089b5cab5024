// Package compression packs ledger entry blobs before they reach the
// key-value backend.
package compression

import (
	"errors"
	"fmt"
)

// Compressor names accepted in [node_db] compression.
const (
	None = "none"
	LZ4  = "lz4"
)

// ErrUnknown is returned for a compressor name that is not supported.
var ErrUnknown = errors.New("unknown compressor")

// Compressor packs and unpacks stored entries.
type Compressor interface {
	Name() string
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress and rejects input it did not produce.
	Decompress(data []byte) ([]byte, error)
}

// Get returns the compressor for name. An empty name means None.
func Get(name string) (Compressor, error) {
	switch name {
	case None, "":
		return &NoCompressor{}, nil
	case LZ4:
		return &LZ4Compressor{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
}

// Available returns the supported names in sorted order.
func Available() []string {
	return []string{LZ4, None}
}

// IsAvailable reports whether name selects a compressor.
func IsAvailable(name string) bool {
	_, err := Get(name)
	return err == nil
}
