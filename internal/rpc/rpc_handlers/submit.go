package rpc_handlers

import (
	"encoding/json"
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// SubmitMethod handles the submit RPC method
// It applies a transaction given in its JSON form
type SubmitMethod struct {
	Ledger Ledger
}

type submitRequest struct {
	TxJSON json.RawMessage `json:"tx_json"`
}

func (m *SubmitMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request submitRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if len(request.TxJSON) == 0 {
		return nil, rpc_types.RpcErrorMissingField("tx_json")
	}

	transaction, err := tx.FromJSON(request.TxJSON)
	if errors.Is(err, tx.ErrUnknownTransactionType) {
		return nil, rpc_types.RpcErrorInvalidField("tx_json.TransactionType")
	}
	if err != nil {
		return nil, rpc_types.RpcErrorInvalidTransaction("Invalid transaction: " + err.Error())
	}

	// Funding is an administrative operation whatever the entry point
	if transaction.TxType().IsAdmin() && !ctx.IsAdmin {
		return nil, rpc_types.RpcErrorNoPermission("You don't have permission for this command.")
	}

	return submit(ctx, m.Ledger, transaction)
}

func (m *SubmitMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleUser
}
