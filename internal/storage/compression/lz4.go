package compression

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4"
)

// ErrCorrupt is returned when compressed input cannot be decoded.
var ErrCorrupt = errors.New("corrupt compressed data")

// NoCompressor implements a pass-through compressor that doesn't compress data.
type NoCompressor struct{}

// Name returns the name of the compressor.
func (c *NoCompressor) Name() string {
	return "none"
}

// Compress returns a copy of data.
func (c *NoCompressor) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// Decompress returns a copy of data.
func (c *NoCompressor) Decompress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// LZ4 frame layout: [mode byte][uvarint uncompressed length][payload].
// Inputs lz4 cannot shrink are stored raw.
const (
	lz4ModeRaw byte = 0
	lz4ModeLZ4 byte = 1
)

// LZ4Compressor implements LZ4 block compression.
type LZ4Compressor struct{}

// Name returns the name of the compressor.
func (c *LZ4Compressor) Name() string {
	return "lz4"
}

// Compress compresses data using LZ4.
func (c *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	header := make([]byte, 1+binary.MaxVarintLen64)
	n := 1 + binary.PutUvarint(header[1:], uint64(len(data)))
	header = header[:n]

	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	size, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	if size == 0 || size >= len(data) {
		header[0] = lz4ModeRaw
		return append(header, data...), nil
	}
	header[0] = lz4ModeLZ4
	return append(header, compressed[:size]...), nil
}

// Decompress decompresses LZ4 data.
func (c *LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, ErrCorrupt
	}
	length, n := binary.Uvarint(data[1:])
	if n <= 0 {
		return nil, ErrCorrupt
	}
	payload := data[1+n:]

	switch data[0] {
	case lz4ModeRaw:
		if uint64(len(payload)) != length {
			return nil, ErrCorrupt
		}
		return append([]byte(nil), payload...), nil
	case lz4ModeLZ4:
		out := make([]byte, length)
		size, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if uint64(size) != length {
			return nil, ErrCorrupt
		}
		return out, nil
	default:
		return nil, ErrCorrupt
	}
}
