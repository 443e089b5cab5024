package crypto

import (
	"errors"
	"fmt"

	addresscodec "github.com/Peersyst/xrpl-go/address-codec"
)

// ErrInvalidAddress is returned when a classic address cannot be decoded.
var ErrInvalidAddress = errors.New("invalid classic address")

// EncodeAddress encodes an account ID as a classic base58 address ("r...").
func EncodeAddress(id [AccountIDSize]byte) (string, error) {
	return addresscodec.EncodeAccountIDToClassicAddress(id[:])
}

// MustEncodeAddress is EncodeAddress for IDs known to be well formed.
func MustEncodeAddress(id [AccountIDSize]byte) string {
	addr, err := EncodeAddress(id)
	if err != nil {
		panic(fmt.Sprintf("encode account id %X: %v", id, err))
	}
	return addr
}

// DecodeAddress decodes a classic address into its account ID.
func DecodeAddress(address string) ([AccountIDSize]byte, error) {
	var id [AccountIDSize]byte
	if address == "" {
		return id, ErrInvalidAddress
	}
	_, raw, err := addresscodec.DecodeClassicAddressToAccountID(address)
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(raw) != AccountIDSize {
		return id, ErrInvalidAddress
	}
	copy(id[:], raw)
	return id, nil
}
