package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/memecoin"
	"github.com/LeJamon/goMemeLedger/internal/crypto"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

// ErrTransactionNotFound is returned for hashes with no history entry.
var ErrTransactionNotFound = relationaldb.ErrTransactionNotFound

// TxEntry is one transaction read back from history.
type TxEntry struct {
	Hash    string          `json:"hash"`
	TxIndex uint64          `json:"tx_index"`
	TxType  string          `json:"tx_type"`
	Account string          `json:"account"`
	Result  string          `json:"engine_result"`
	Tx      json.RawMessage `json:"tx"`
	Meta    json.RawMessage `json:"meta"`
}

// TxHistory is one page of history. Pass Marker back to get the next page.
type TxHistory struct {
	Transactions []TxEntry `json:"transactions"`
	Limit        uint32    `json:"limit"`
	Marker       *uint64   `json:"marker,omitempty"`
}

// assetOf returns the asset a transaction refers to, if any.
func assetOf(transaction tx.Transaction) string {
	switch t := transaction.(type) {
	case *memecoin.AssetCreate:
		return t.Name
	case *memecoin.AssetBuy:
		return t.Asset
	case *memecoin.AssetSell:
		return t.Asset
	default:
		return ""
	}
}

// index writes an applied transaction to history. It is listed under the
// submitter and, for asset transactions, under the asset and its creator,
// since trades move the creator's balance too.
func (s *Service) index(ctx context.Context, transaction tx.Transaction, applied tx.ApplyResult) error {
	submitter, err := transaction.GetCommon().AccountID()
	if err != nil {
		return err
	}
	rawTxn, err := json.Marshal(transaction)
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}
	rawMeta, err := json.Marshal(applied.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	rec := &relationaldb.Record{
		Info: relationaldb.TransactionInfo{
			Hash:    applied.Hash,
			TxIndex: applied.TxIndex,
			TxType:  transaction.TxType().String(),
			Account: submitter,
			Result:  applied.Result.String(),
			RawTxn:  rawTxn,
			TxnMeta: rawMeta,
		},
		Accounts: []relationaldb.AccountID{submitter},
		Asset:    assetOf(transaction),
	}
	if rec.Asset != "" {
		asset, err := s.registry().Get(rec.Asset)
		if err != nil {
			return fmt.Errorf("read asset %q: %w", rec.Asset, err)
		}
		rec.Accounts = append(rec.Accounts, asset.Creator)
	}
	return s.history.Index(ctx, rec)
}

// repositories returns the history repositories. The caller must call
// release once done with them.
func (s *Service) repositories() (repos relationaldb.RepositoryManager, release func(), err error) {
	release, err = s.acquire()
	if err != nil {
		return nil, nil, err
	}
	if s.history == nil {
		release()
		return nil, nil, ErrHistoryUnavailable
	}
	return s.history.Repositories(), release, nil
}

// AccountTx returns a page of the transactions that touched an account.
func (s *Service) AccountTx(ctx context.Context, address string, opts relationaldb.PageOptions) (*TxHistory, error) {
	repos, release, err := s.repositories()
	if err != nil {
		return nil, err
	}
	defer release()
	id, err := crypto.DecodeAddress(address)
	if err != nil {
		return nil, tx.ErrInvalidAccount
	}
	page, err := repos.AccountTransaction().GetAccountTxsPage(ctx, id, opts)
	if err != nil {
		return nil, err
	}
	return historyFromPage(page), nil
}

// AssetTx returns a page of the transactions of an asset.
func (s *Service) AssetTx(ctx context.Context, asset string, opts relationaldb.PageOptions) (*TxHistory, error) {
	repos, release, err := s.repositories()
	if err != nil {
		return nil, err
	}
	defer release()
	page, err := repos.AssetTransaction().GetAssetTxsPage(ctx, asset, opts)
	if err != nil {
		return nil, err
	}
	return historyFromPage(page), nil
}

// GetTransaction looks up an applied transaction by its hex hash.
func (s *Service) GetTransaction(ctx context.Context, hash string) (*TxEntry, error) {
	repos, release, err := s.repositories()
	if err != nil {
		return nil, err
	}
	defer release()
	h, err := relationaldb.ParseHash(hash)
	if err != nil {
		return nil, err
	}
	info, err := repos.Transaction().GetTransaction(ctx, h)
	if err != nil {
		return nil, err
	}
	entry := entryFromInfo(info)
	return &entry, nil
}

func historyFromPage(page *relationaldb.TxPage) *TxHistory {
	out := &TxHistory{
		Transactions: make([]TxEntry, 0, len(page.Transactions)),
		Limit:        page.Limit,
		Marker:       page.Marker,
	}
	for i := range page.Transactions {
		out.Transactions = append(out.Transactions, entryFromInfo(&page.Transactions[i]))
	}
	return out
}

func entryFromInfo(info *relationaldb.TransactionInfo) TxEntry {
	account, err := crypto.EncodeAddress(info.Account)
	if err != nil {
		account = info.Account.String()
	}
	return TxEntry{
		Hash:    hex.EncodeToString(info.Hash[:]),
		TxIndex: info.TxIndex,
		TxType:  info.TxType,
		Account: account,
		Result:  info.Result,
		Tx:      json.RawMessage(info.RawTxn),
		Meta:    json.RawMessage(info.TxnMeta),
	}
}

// IsNotFound reports whether err means a lookup found nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrAssetNotFound) ||
		errors.Is(err, ErrAccountNotFound)
}
