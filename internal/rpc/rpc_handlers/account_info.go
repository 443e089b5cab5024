package rpc_handlers

import (
	"encoding/json"

	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// AccountInfoMethod handles the account_info RPC method
type AccountInfoMethod struct {
	Ledger Ledger
}

type accountInfoRequest struct {
	Account  string `json:"account"`
	Holdings bool   `json:"holdings,omitempty"`
}

func (m *AccountInfoMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request accountInfoRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if request.Account == "" {
		return nil, rpc_types.RpcErrorMissingField("account")
	}

	info, err := m.Ledger.GetAccount(ctx.Context, request.Account, request.Holdings)
	if err != nil {
		return nil, errorFromLedger(err)
	}
	return map[string]interface{}{
		"account_data": info,
	}, nil
}

func (m *AccountInfoMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleGuest
}
