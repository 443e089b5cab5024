package rpc_handlers

import (
	"encoding/json"

	"github.com/LeJamon/goMemeLedger/internal/core/tx/account"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// FundMethod handles the fund RPC method
// It issues base currency to an account, creating it when needed
type FundMethod struct {
	Ledger Ledger
}

type fundRequest struct {
	Account string           `json:"account"`
	Amount  rpc_types.Uint64 `json:"amount"`
}

func (m *FundMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request fundRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if request.Account == "" {
		return nil, rpc_types.RpcErrorMissingField("account")
	}
	return submit(ctx, m.Ledger, account.NewAccountFund(request.Account, uint64(request.Amount)))
}

func (m *FundMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleAdmin
}
