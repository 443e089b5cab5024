package rpc_handlers

import (
	"encoding/json"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/service"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// AccountTxMethod handles the account_tx RPC method
// Newest transactions come first unless forward is set
type AccountTxMethod struct {
	Ledger Ledger
}

type accountTxRequest struct {
	Account string `json:"account"`
	rpc_types.PaginationParams
}

func (m *AccountTxMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request accountTxRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if request.Account == "" {
		return nil, rpc_types.RpcErrorMissingField("account")
	}

	history, err := m.Ledger.AccountTx(ctx.Context, request.Account, request.PageOptions())
	if err != nil {
		return nil, errorFromLedger(err)
	}
	response := historyResponse(history)
	response["account"] = request.Account
	return response, nil
}

func (m *AccountTxMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleGuest
}

// AssetTxMethod handles the asset_tx RPC method
type AssetTxMethod struct {
	Ledger Ledger
}

type assetTxRequest struct {
	Asset string `json:"asset"`
	rpc_types.PaginationParams
}

func (m *AssetTxMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request assetTxRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if request.Asset == "" {
		return nil, rpc_types.RpcErrorMissingField("asset")
	}

	history, err := m.Ledger.AssetTx(ctx.Context, request.Asset, request.PageOptions())
	if err != nil {
		return nil, errorFromLedger(err)
	}
	response := historyResponse(history)
	response["asset"] = request.Asset
	return response, nil
}

func (m *AssetTxMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleGuest
}

func historyResponse(history *service.TxHistory) map[string]interface{} {
	response := map[string]interface{}{
		"transactions": history.Transactions,
		"limit":        history.Limit,
	}
	if history.Marker != nil {
		response["marker"] = *history.Marker
	}
	return response
}
