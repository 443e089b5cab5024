package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcAccountIDDeterministic(t *testing.T) {
	kp := KeyPairFromPassphrase("alice")
	require.Len(t, kp.PublicKey, 33)
	require.Len(t, kp.PrivateKey, 32)

	again := KeyPairFromPassphrase("alice")
	require.Equal(t, kp.PublicKey, again.PublicKey)
	require.Equal(t, kp.AccountID(), again.AccountID())

	other := KeyPairFromPassphrase("bob")
	require.NotEqual(t, kp.AccountID(), other.AccountID())
}

func TestCalcAccountIDKnownVectors(t *testing.T) {
	tests := []struct {
		name      string
		publicKey string
		accountID string
		address   string
	}{
		{
			name:      "genesis secp256k1 key",
			publicKey: "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020",
			accountID: "b5f762798a53d543a014caf8b297cff8f2f937e8",
			address:   "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pubKey, err := hex.DecodeString(tt.publicKey)
			require.NoError(t, err)

			id := CalcAccountID(pubKey)
			assert.Equal(t, tt.accountID, hex.EncodeToString(id[:]))
			if tt.address != "" {
				assert.Equal(t, tt.address, MustEncodeAddress(id))
			}
		})
	}
}

func TestAddressRoundTrip(t *testing.T) {
	id := KeyPairFromPassphrase("alice").AccountID()

	addr, err := EncodeAddress(id)
	require.NoError(t, err)
	require.True(t, len(addr) > 25)
	assert.Equal(t, byte('r'), addr[0])

	decoded, err := DecodeAddress(addr)
	require.NoError(t, err)
	require.Equal(t, id, decoded)
}

func TestDecodeAddressInvalid(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "garbage", address: "not-an-address"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAddress(tc.address)
			require.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestIsCurvePoint(t *testing.T) {
	kp := KeyPairFromPassphrase("alice")
	var x [32]byte
	copy(x[:], kp.PublicKey[1:])
	require.True(t, IsCurvePoint(x))

	// x = 5 has no square root for y^2 = x^3 + 7 over the secp256k1 field.
	var off [32]byte
	off[31] = 5
	require.False(t, IsCurvePoint(off))
}
