// Package authority derives the keyless signing identity that controls
// minting for an asset.
//
// The identity is the account id of a 32-byte value that is not the
// x-coordinate of any secp256k1 point. Such a value cannot be a public key,
// so no private key exists for it and the only way to act as the identity is
// to present a Token produced by this package.
package authority

import (
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/crypto"
	common "github.com/LeJamon/goMemeLedger/internal/crypto/common"
)

// derivationMarker separates derived identities from every other use of
// Sha512Half over similar inputs.
const derivationMarker = "ProgramDerivedAddress"

var (
	// ErrNoValidBump is returned when every bump yields a point on the curve.
	ErrNoValidBump = errors.New("no off-curve bump for seeds")

	// ErrInvalidBump is returned by Reconstruct when the supplied bump does
	// not produce an off-curve value.
	ErrInvalidBump = errors.New("bump does not produce an off-curve identity")
)

// Seeds are the inputs an identity is derived from.
type Seeds struct {
	// DomainTag namespaces derivations of this deployment.
	DomainTag string

	// Name is the asset name.
	Name string

	// ProgramID binds the identity to the program that owns it.
	ProgramID []byte
}

// Token is proof that the holder derived an authority identity. The zero
// value is not a valid token and tokens cannot be built outside this package.
type Token struct {
	identity [crypto.AccountIDSize]byte
	bump     uint8
	valid    bool
}

// Identity returns the account id the token speaks for.
func (t Token) Identity() [crypto.AccountIDSize]byte {
	return t.identity
}

// Bump returns the derivation parameter that produced the identity.
func (t Token) Bump() uint8 {
	return t.bump
}

// Valid reports whether the token was produced by Derive or Reconstruct.
func (t Token) Valid() bool {
	return t.valid
}

// Authorizes reports whether the token speaks for identity.
func (t Token) Authorizes(identity [crypto.AccountIDSize]byte) bool {
	return t.valid && t.identity == identity
}

// Derive searches bumps from 255 down to 0 and returns a token for the first
// off-curve candidate.
func Derive(seeds Seeds) (Token, error) {
	for b := 255; b >= 0; b-- {
		if token, ok := tryBump(seeds, uint8(b)); ok {
			return token, nil
		}
	}
	return Token{}, ErrNoValidBump
}

// Reconstruct rebuilds the token for a bump recorded at derivation time.
func Reconstruct(seeds Seeds, bump uint8) (Token, error) {
	token, ok := tryBump(seeds, bump)
	if !ok {
		return Token{}, ErrInvalidBump
	}
	return token, nil
}

func tryBump(seeds Seeds, bump uint8) (Token, bool) {
	candidate := common.Sha512Half(
		[]byte(seeds.DomainTag),
		[]byte(seeds.Name),
		[]byte{bump},
		seeds.ProgramID,
		[]byte(derivationMarker),
	)
	if crypto.IsCurvePoint(candidate) {
		return Token{}, false
	}

	key := make([]byte, 0, 33)
	key = append(key, 0x02)
	key = append(key, candidate[:]...)

	return Token{
		identity: crypto.CalcAccountID(key),
		bump:     bump,
		valid:    true,
	}, true
}
