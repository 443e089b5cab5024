package sle

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ugorji/go/codec"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"
)

// entryHeaderSize is the big-endian entry type prefix on every blob.
const entryHeaderSize = 2

var (
	// ErrShortEntry is returned for blobs too small to carry a type prefix.
	ErrShortEntry = errors.New("ledger entry too short")

	// ErrEntryTypeMismatch is returned when a blob holds a different entry type
	// than the one requested.
	ErrEntryTypeMismatch = errors.New("ledger entry type mismatch")
)

var msgpackHandle = newMsgpackHandle()

func newMsgpackHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.Canonical = true
	h.WriteExt = true
	return h
}

// GetEntryType returns the entry type of a serialized ledger entry.
func GetEntryType(data []byte) (entry.Type, error) {
	if len(data) < entryHeaderSize {
		return 0, ErrShortEntry
	}
	return entry.Type(binary.BigEndian.Uint16(data[:entryHeaderSize])), nil
}

func encodeEntry(t entry.Type, v any) ([]byte, error) {
	var buf bytes.Buffer
	var header [entryHeaderSize]byte
	binary.BigEndian.PutUint16(header[:], uint16(t))
	buf.Write(header[:])

	if err := codec.NewEncoder(&buf, msgpackHandle).Encode(v); err != nil {
		return nil, fmt.Errorf("encode %s: %w", t, err)
	}
	return buf.Bytes(), nil
}

func decodeEntry(data []byte, want entry.Type, v any) error {
	got, err := GetEntryType(data)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: have %s, want %s", ErrEntryTypeMismatch, got, want)
	}
	if err := codec.NewDecoderBytes(data[entryHeaderSize:], msgpackHandle).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", want, err)
	}
	return nil
}
