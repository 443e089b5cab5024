package rpc_handlers

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strings"

	"github.com/LeJamon/goMemeLedger/internal/crypto"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// WalletProposeMethod handles the wallet_propose RPC method
// This generates a new random keypair or derives one from a passphrase
type WalletProposeMethod struct{}

type walletProposeRequest struct {
	Passphrase string `json:"passphrase,omitempty"`
	KeyType    string `json:"key_type,omitempty"`
}

const keyTypeSecp256k1 = "secp256k1"

func (m *WalletProposeMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request walletProposeRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}

	keyType := strings.ToLower(request.KeyType)
	if keyType == "" {
		keyType = keyTypeSecp256k1
	}
	if keyType != keyTypeSecp256k1 {
		return nil, rpc_types.RpcErrorBadKeyType()
	}

	var keys crypto.KeyPair
	var warning string
	if request.Passphrase != "" {
		keys = crypto.KeyPairFromPassphrase(request.Passphrase)
		if estimateEntropy(request.Passphrase) < 80.0 {
			warning = "This wallet was generated using a user-supplied passphrase that has low entropy and is vulnerable to brute-force attacks."
		} else {
			warning = "This wallet was generated using a user-supplied passphrase. It may be vulnerable to brute-force attacks."
		}
	} else {
		var err error
		if keys, err = crypto.RandomKeyPair(); err != nil {
			return nil, rpc_types.RpcErrorInternal(err.Error())
		}
	}

	accountID, err := crypto.EncodeAddress(keys.AccountID())
	if err != nil {
		return nil, rpc_types.RpcErrorInternal("Failed to derive account address: " + err.Error())
	}

	response := map[string]interface{}{
		"account_id":      accountID,
		"key_type":        keyType,
		"public_key_hex":  strings.ToUpper(hex.EncodeToString(keys.PublicKey)),
		"private_key_hex": strings.ToUpper(hex.EncodeToString(keys.PrivateKey)),
	}
	if warning != "" {
		response["warning"] = warning
	}
	return response, nil
}

// estimateEntropy estimates the Shannon entropy of a string in bits
func estimateEntropy(input string) float64 {
	if len(input) == 0 {
		return 0
	}

	freq := make(map[rune]float64)
	for _, c := range input {
		freq[c]++
	}

	var se float64
	length := float64(len(input))
	for _, f := range freq {
		x := f / length
		se += x * math.Log2(x)
	}
	return math.Floor(-se * length)
}

func (m *WalletProposeMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleGuest
}
