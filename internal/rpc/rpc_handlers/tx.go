package rpc_handlers

import (
	"encoding/json"

	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

// TxMethod handles the tx RPC method
type TxMethod struct {
	Ledger Ledger
}

type txRequest struct {
	Transaction string `json:"transaction"`
}

func (m *TxMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request txRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if request.Transaction == "" {
		return nil, rpc_types.RpcErrorMissingField("transaction")
	}
	if _, err := relationaldb.ParseHash(request.Transaction); err != nil {
		return nil, rpc_types.RpcErrorInvalidHash("Transaction hash is malformed.")
	}

	entry, err := m.Ledger.GetTransaction(ctx.Context, request.Transaction)
	if err != nil {
		return nil, errorFromLedger(err)
	}
	return map[string]interface{}{
		"hash":          entry.Hash,
		"tx_index":      entry.TxIndex,
		"tx_type":       entry.TxType,
		"account":       entry.Account,
		"engine_result": entry.Result,
		"tx_json":       entry.Tx,
		"meta":          entry.Meta,
	}, nil
}

func (m *TxMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleGuest
}
