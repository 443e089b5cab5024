package rpc_handlers

import (
	"encoding/json"

	"github.com/LeJamon/goMemeLedger/internal/core/tx/memecoin"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// AssetCreateMethod handles the asset_create RPC method
type AssetCreateMethod struct {
	Ledger Ledger
}

type assetCreateRequest struct {
	Account       string           `json:"account"`
	Name          string           `json:"name"`
	Symbol        string           `json:"symbol"`
	URI           string           `json:"uri,omitempty"`
	Decimals      uint8            `json:"decimals"`
	InitialSupply rpc_types.Uint64 `json:"initial_supply"`
	PricePerUnit  rpc_types.Uint64 `json:"price_per_unit"`
}

func (m *AssetCreateMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request assetCreateRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if request.Account == "" {
		return nil, rpc_types.RpcErrorMissingField("account")
	}
	if request.Name == "" {
		return nil, rpc_types.RpcErrorMissingField("name")
	}

	create := memecoin.NewAssetCreate(
		request.Account,
		request.Name,
		request.Symbol,
		request.URI,
		request.Decimals,
		uint64(request.InitialSupply),
		uint64(request.PricePerUnit),
	)
	result, err := m.Ledger.Submit(ctx.Context, create)
	if err != nil {
		return nil, errorFromLedger(err)
	}

	response := submitResponse(create, result)
	if result.Applied {
		asset, err := m.Ledger.GetAsset(ctx.Context, request.Name)
		if err != nil {
			return nil, errorFromLedger(err)
		}
		response["asset"] = asset
	}
	return response, nil
}

func (m *AssetCreateMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleUser
}

// tradeRequest is shared by asset_buy and asset_sell
type tradeRequest struct {
	Account string           `json:"account"`
	Asset   string           `json:"asset"`
	Amount  rpc_types.Uint64 `json:"amount"`
}

func (r *tradeRequest) validate() *rpc_types.RpcError {
	if r.Account == "" {
		return rpc_types.RpcErrorMissingField("account")
	}
	if r.Asset == "" {
		return rpc_types.RpcErrorMissingField("asset")
	}
	return nil
}

// AssetBuyMethod handles the asset_buy RPC method
type AssetBuyMethod struct {
	Ledger Ledger
}

func (m *AssetBuyMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request tradeRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if rpcErr := request.validate(); rpcErr != nil {
		return nil, rpcErr
	}
	return submit(ctx, m.Ledger, memecoin.NewAssetBuy(request.Account, request.Asset, uint64(request.Amount)))
}

func (m *AssetBuyMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleUser
}

// AssetSellMethod handles the asset_sell RPC method
type AssetSellMethod struct {
	Ledger Ledger
}

func (m *AssetSellMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request tradeRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if rpcErr := request.validate(); rpcErr != nil {
		return nil, rpcErr
	}
	return submit(ctx, m.Ledger, memecoin.NewAssetSell(request.Account, request.Asset, uint64(request.Amount)))
}

func (m *AssetSellMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleUser
}

// AssetInfoMethod handles the asset_info RPC method
type AssetInfoMethod struct {
	Ledger Ledger
}

type assetInfoRequest struct {
	Asset string `json:"asset"`
}

func (m *AssetInfoMethod) Handle(ctx *rpc_types.RpcContext, params json.RawMessage) (interface{}, *rpc_types.RpcError) {
	var request assetInfoRequest
	if rpcErr := parseParams(params, &request); rpcErr != nil {
		return nil, rpcErr
	}
	if request.Asset == "" {
		return nil, rpc_types.RpcErrorMissingField("asset")
	}

	asset, err := m.Ledger.GetAsset(ctx.Context, request.Asset)
	if err != nil {
		return nil, errorFromLedger(err)
	}
	return map[string]interface{}{
		"asset": asset,
	}, nil
}

func (m *AssetInfoMethod) RequiredRole() rpc_types.Role {
	return rpc_types.RoleGuest
}
