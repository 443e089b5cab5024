package crypto

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"

	common "github.com/LeJamon/goMemeLedger/internal/crypto/common"
)

// ErrKeyGeneration is returned when a key pair cannot be produced.
var ErrKeyGeneration = errors.New("failed to generate key pair")

// KeyPair is a secp256k1 participant key pair.
type KeyPair struct {
	// PublicKey is the 33-byte compressed public key.
	PublicKey []byte

	// PrivateKey is the 32-byte secret scalar.
	PrivateKey []byte
}

// AccountID returns the account ID controlled by this key pair.
func (k KeyPair) AccountID() [AccountIDSize]byte {
	return CalcAccountID(k.PublicKey)
}

// KeyPairFromPassphrase derives a deterministic key pair from a passphrase.
// The same passphrase always yields the same key pair.
func KeyPairFromPassphrase(passphrase string) KeyPair {
	seed := common.Sha512Half([]byte(passphrase))
	priv, pub := btcec.PrivKeyFromBytes(seed[:])
	return KeyPair{
		PublicKey:  pub.SerializeCompressed(),
		PrivateKey: priv.Serialize(),
	}
}

// RandomKeyPair generates a fresh key pair from the system CSPRNG.
func RandomKeyPair() (KeyPair, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return KeyPair{}, ErrKeyGeneration
	}
	return KeyPair{
		PublicKey:  priv.PubKey().SerializeCompressed(),
		PrivateKey: priv.Serialize(),
	}, nil
}

// IsCurvePoint reports whether x is the x-coordinate of a point on secp256k1.
// A 32-byte value that is not on the curve cannot be a public key, so nobody
// can hold a private key for it.
func IsCurvePoint(x [32]byte) bool {
	compressed := make([]byte, 0, 33)
	compressed = append(compressed, 0x02)
	compressed = append(compressed, x[:]...)
	_, err := btcec.ParsePubKey(compressed)
	return err == nil
}
