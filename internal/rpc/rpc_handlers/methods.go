package rpc_handlers

import (
	"time"

	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

// RegisterAll registers every method served over JSON-RPC.
func RegisterAll(registry *rpc_types.MethodRegistry, ledger Ledger, started time.Time) {
	// Transactions
	registry.Register("submit", &SubmitMethod{Ledger: ledger})
	registry.Register("asset_create", &AssetCreateMethod{Ledger: ledger})
	registry.Register("asset_buy", &AssetBuyMethod{Ledger: ledger})
	registry.Register("asset_sell", &AssetSellMethod{Ledger: ledger})
	registry.Register("fund", &FundMethod{Ledger: ledger})

	// Queries
	registry.Register("asset_info", &AssetInfoMethod{Ledger: ledger})
	registry.Register("account_info", &AccountInfoMethod{Ledger: ledger})
	registry.Register("account_tx", &AccountTxMethod{Ledger: ledger})
	registry.Register("asset_tx", &AssetTxMethod{Ledger: ledger})
	registry.Register("tx", &TxMethod{Ledger: ledger})

	// Server
	registry.Register("server_info", &ServerInfoMethod{Ledger: ledger, Started: started})
	registry.Register("wallet_propose", &WalletProposeMethod{})
	registry.Register("ping", &PingMethod{})
}
