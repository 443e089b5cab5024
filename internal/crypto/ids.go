package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// AccountIDSize is the size of an account ID in bytes.
const AccountIDSize = 20

// CalcAccountID computes the account ID from a public key.
// The account ID is a 160-bit identifier computed as RIPEMD160(SHA256(publicKey)).
//
// Derived authorities go through the same function with a key that lies off
// the curve, so every identity on the ledger has the same shape.
func CalcAccountID(publicKey []byte) (id [AccountIDSize]byte) {
	digest := sha256.Sum256(publicKey)
	h := ripemd160.New()
	h.Write(digest[:])
	copy(id[:], h.Sum(nil))
	return id
}
