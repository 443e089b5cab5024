package rpc_handlers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/service"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

//go:generate mockgen -destination=mocks/ledger.go -package=mocks . Ledger

// Ledger is the part of the ledger service the RPC methods call.
type Ledger interface {
	Submit(ctx context.Context, transaction tx.Transaction) (*service.SubmitResult, error)
	GetAsset(ctx context.Context, name string) (*service.AssetInfo, error)
	GetAccount(ctx context.Context, address string, withHoldings bool) (*service.AccountInfo, error)
	AccountTx(ctx context.Context, address string, opts relationaldb.PageOptions) (*service.TxHistory, error)
	AssetTx(ctx context.Context, asset string, opts relationaldb.PageOptions) (*service.TxHistory, error)
	GetTransaction(ctx context.Context, hash string) (*service.TxEntry, error)
	ServerInfo(ctx context.Context) (*service.ServerInfo, error)
}

// parseParams decodes the request object. Methods whose fields are all
// optional accept a missing params object.
func parseParams(params json.RawMessage, v interface{}) *rpc_types.RpcError {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return rpc_types.RpcErrorInvalidParams("Invalid parameters: " + err.Error())
	}
	return nil
}

// errorFromLedger maps a ledger service error to an RPC error.
func errorFromLedger(err error) *rpc_types.RpcError {
	var resultErr *tx.ResultError
	switch {
	case errors.Is(err, tx.ErrInvalidAccount):
		return rpc_types.RpcErrorActMalformed("Account malformed.")
	case errors.Is(err, service.ErrAccountNotFound):
		return rpc_types.RpcErrorActNotFound("Account not found.")
	case errors.Is(err, service.ErrAssetNotFound):
		return rpc_types.RpcErrorObjectNotFound("Asset not found.")
	case errors.Is(err, service.ErrTransactionNotFound):
		return rpc_types.RpcErrorTxnNotFound("Transaction not found.")
	case errors.Is(err, service.ErrHistoryUnavailable):
		return rpc_types.RpcErrorNotEnabled("transaction history")
	case errors.Is(err, service.ErrFundingDisabled):
		return rpc_types.RpcErrorNoPermission("You don't have permission for this command.")
	case errors.Is(err, service.ErrClosed):
		return rpc_types.RpcErrorShutDown("The server is shutting down.")
	case errors.As(err, &resultErr):
		return rpc_types.RpcErrorInvalidTransaction(resultErr.Error())
	default:
		return rpc_types.RpcErrorInternal(err.Error())
	}
}

// submitResponse renders a submission the way the submit method reports it.
func submitResponse(transaction tx.Transaction, result *service.SubmitResult) map[string]interface{} {
	response := map[string]interface{}{
		"engine_result":         result.Result.String(),
		"engine_result_code":    int(result.Result),
		"engine_result_message": result.Message,
		"applied":               result.Applied,
		"tx_json":               transaction,
	}
	if result.Hash != "" {
		response["hash"] = result.Hash
	}
	if result.Applied {
		response["tx_index"] = result.TxIndex
		response["meta"] = result.Metadata
	}
	return response
}

// submit applies a transaction built by one of the convenience methods.
func submit(ctx *rpc_types.RpcContext, ledger Ledger, transaction tx.Transaction) (interface{}, *rpc_types.RpcError) {
	result, err := ledger.Submit(ctx.Context, transaction)
	if err != nil {
		return nil, errorFromLedger(err)
	}
	return submitResponse(transaction, result), nil
}
