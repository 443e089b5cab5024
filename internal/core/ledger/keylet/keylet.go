package keylet

import (
	"encoding/binary"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/entry"
	crypto "github.com/LeJamon/goMemeLedger/internal/crypto/common"
)

// Space identifiers for keylet generation
const (
	spaceAccount    uint16 = 'a' // Account root
	spaceAsset      uint16 = 'm' // Asset record
	spaceMint       uint16 = 'n' // Unit-ledger mint
	spaceHolding    uint16 = 'h' // Holder unit account
	spaceLedgerInfo uint16 = 's' // Ledger info (singleton)
)

// Keylet represents an addressable location in the ledger state.
// It combines a type identifier with a 256-bit key.
type Keylet struct {
	Type entry.Type
	Key  [32]byte
}

// indexHash computes a keylet key by hashing the space and provided data.
func indexHash(space uint16, data ...[]byte) [32]byte {
	spaceBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(spaceBytes, space)

	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, spaceBytes)
	inputs = append(inputs, data...)

	return crypto.Sha512Half(inputs...)
}

// Account returns the keylet for an account root entry.
func Account(accountID [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeAccountRoot,
		Key:  indexHash(spaceAccount, accountID[:]),
	}
}

// Asset returns the keylet for the record of the named asset. The domain
// tag namespaces records of different deployments; the name is hashed with
// a length prefix so that (tag, name) pairs cannot be shifted into each other.
func Asset(domainTag, name string) Keylet {
	var tagLen [2]byte
	binary.BigEndian.PutUint16(tagLen[:], uint16(len(domainTag)))
	return Keylet{
		Type: entry.TypeAssetRecord,
		Key:  indexHash(spaceAsset, tagLen[:], []byte(domainTag), []byte(name)),
	}
}

// Mint returns the keylet for the unit-ledger mint bound to an asset record.
func Mint(asset [32]byte) Keylet {
	return Keylet{
		Type: entry.TypeMint,
		Key:  indexHash(spaceMint, asset[:]),
	}
}

// Holding returns the keylet for the unit balance of owner in mint.
func Holding(mint [32]byte, owner [20]byte) Keylet {
	return Keylet{
		Type: entry.TypeHolding,
		Key:  indexHash(spaceHolding, mint[:], owner[:]),
	}
}

// LedgerInfo returns the keylet for the singleton ledger info entry.
func LedgerInfo() Keylet {
	return Keylet{
		Type: entry.TypeLedgerInfo,
		Key:  indexHash(spaceLedgerInfo),
	}
}
