package service

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/account"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/memecoin"
	"github.com/LeJamon/goMemeLedger/internal/metrics"
)

// SubmitResult contains the result of submitting a transaction
type SubmitResult struct {
	// Result is the engine result code
	Result tx.Result `json:"engine_result"`

	// Applied indicates if the transaction was applied to the ledger
	Applied bool `json:"applied"`

	// Hash identifies the transaction. Empty when it was rejected before hashing.
	Hash string `json:"hash,omitempty"`

	// TxIndex is the position of an applied transaction in the ledger history
	TxIndex uint64 `json:"tx_index"`

	// Metadata contains the changes made by the transaction
	Metadata *tx.Metadata `json:"meta,omitempty"`

	// Message is a human-readable result message
	Message string `json:"engine_result_message"`
}

// Err returns the result as a *tx.ResultError, or nil on success.
func (r *SubmitResult) Err() error {
	return tx.NewResultError(r.Result)
}

// Submit applies a transaction and, when it is applied, indexes it into
// the history database. A history failure does not undo the transaction.
func (s *Service) Submit(ctx context.Context, transaction tx.Transaction) (*SubmitResult, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	if transaction.TxType().IsAdmin() && !s.config.AllowFunding {
		return nil, ErrFundingDisabled
	}

	start := time.Now()
	applied := s.engine.Apply(ctx, transaction)
	txType := transaction.TxType().String()
	s.metrics.ObserveApply(txType, applied.Result.String(), time.Since(start))

	result := &SubmitResult{
		Result:   applied.Result,
		Applied:  applied.Applied,
		TxIndex:  applied.TxIndex,
		Metadata: applied.Metadata,
		Message:  applied.Message,
	}
	if applied.Hash != ([32]byte{}) {
		result.Hash = hex.EncodeToString(applied.Hash[:])
	}

	if !applied.Applied {
		s.log.Debug().
			Str("tx", txType).
			Str("result", applied.Result.String()).
			Msg("transaction rejected")
		return result, nil
	}

	if trade := applied.Metadata.Trade; trade != nil {
		side := metrics.SideBuy
		if transaction.TxType() == tx.TypeAssetSell {
			side = metrics.SideSell
		}
		s.metrics.ObserveTrade(side, trade.Net, trade.Fee)
	}

	if s.history != nil {
		if err := s.index(ctx, transaction, applied); err != nil {
			s.metrics.ObserveHistoryIndex(metrics.Error)
			s.log.Warn().Err(err).
				Str("hash", result.Hash).
				Uint64("tx_index", applied.TxIndex).
				Msg("failed to index transaction history")
		} else {
			s.metrics.ObserveHistoryIndex(metrics.Success)
		}
	}
	return result, nil
}

// submit runs Submit and folds a non-success result into the error.
func (s *Service) submit(ctx context.Context, transaction tx.Transaction) (*SubmitResult, error) {
	result, err := s.Submit(ctx, transaction)
	if err != nil {
		return nil, err
	}
	return result, result.Err()
}

// Register creates an asset and returns its record.
func (s *Service) Register(ctx context.Context, creator, name, symbol, uri string, decimals uint8, initialSupply, pricePerUnit uint64) (*AssetInfo, error) {
	create := memecoin.NewAssetCreate(creator, name, symbol, uri, decimals, initialSupply, pricePerUnit)
	if _, err := s.submit(ctx, create); err != nil {
		return nil, err
	}
	return s.GetAsset(ctx, name)
}

// Buy mints amount units of asset to buyer against amount * price.
func (s *Service) Buy(ctx context.Context, buyer, asset string, amount uint64) (*SubmitResult, error) {
	return s.submit(ctx, memecoin.NewAssetBuy(buyer, asset, amount))
}

// Sell burns amount units of asset held by seller for the net proceeds.
func (s *Service) Sell(ctx context.Context, seller, asset string, amount uint64) (*SubmitResult, error) {
	return s.submit(ctx, memecoin.NewAssetSell(seller, asset, amount))
}

// Fund issues base currency to an account, creating it when needed.
func (s *Service) Fund(ctx context.Context, address string, amount uint64) (*SubmitResult, error) {
	return s.submit(ctx, account.NewAccountFund(address, amount))
}
