package testing

import (
	"fmt"

	"github.com/LeJamon/goMemeLedger/internal/crypto"
)

// Account represents a test account with keypair and address information.
type Account struct {
	// Name is a human-readable identifier for the account (used for debugging).
	Name string

	// Address is the classic address (e.g., "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh").
	Address string

	// PublicKey is the 33-byte compressed secp256k1 public key.
	PublicKey []byte

	// PrivateKey is the private key bytes (32 bytes).
	PrivateKey []byte

	// ID is the 20-byte account ID derived from the public key.
	ID [20]byte
}

// NewAccount creates a new test account with a deterministic keypair derived from the name.
// Using the same name will always produce the same account, making tests reproducible.
func NewAccount(name string) *Account {
	return NewAccountFromPassphrase(name, name)
}

// NewAccountFromPassphrase creates a test account from a specific passphrase.
// This is useful for recreating well-known accounts.
func NewAccountFromPassphrase(name, passphrase string) *Account {
	kp := crypto.KeyPairFromPassphrase(passphrase)
	id := kp.AccountID()
	return &Account{
		Name:       name,
		Address:    crypto.MustEncodeAddress(id),
		PublicKey:  kp.PublicKey,
		PrivateKey: kp.PrivateKey,
		ID:         id,
	}
}

// Human returns the classic address.
func (a *Account) Human() string {
	return a.Address
}

func (a *Account) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Address)
}
