package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

const txColumns = `t.trans_id, t.tx_index, t.tx_type, t.account, t.result, t.raw_txn, t.txn_meta`

// TransactionRepository implements relationaldb.TransactionRepository
type TransactionRepository struct {
	db      *sql.DB
	tx      *sql.Tx // Optional transaction context
	dialect dialect
}

// getExecutor returns the appropriate executor (db or tx)
func (r *TransactionRepository) getExecutor() executor {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// SaveTransaction stores txInfo. Saving the same hash again is a no-op.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txInfo *relationaldb.TransactionInfo) error {
	query := r.dialect.rebind(`INSERT INTO transactions (trans_id, tx_index, tx_type, account, result, raw_txn, txn_meta)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  ON CONFLICT (trans_id) DO NOTHING`)

	_, err := r.getExecutor().ExecContext(ctx, query,
		txInfo.Hash[:], int64(txInfo.TxIndex), txInfo.TxType, txInfo.Account[:], txInfo.Result, txInfo.RawTxn, txInfo.TxnMeta)
	if err != nil {
		return relationaldb.NewQueryError("save_transaction", "failed to save transaction", err)
	}
	return nil
}

// GetTransaction returns relationaldb.ErrTransactionNotFound for unknown hashes.
func (r *TransactionRepository) GetTransaction(ctx context.Context, hash relationaldb.Hash) (*relationaldb.TransactionInfo, error) {
	query := r.dialect.rebind(`SELECT ` + txColumns + ` FROM transactions t WHERE t.trans_id = ?`)

	info, err := scanTransaction(r.getExecutor().QueryRowContext(ctx, query, hash[:]))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, relationaldb.ErrTransactionNotFound
	}
	if err != nil {
		return nil, relationaldb.NewQueryError("get_transaction", "failed to query transaction", err)
	}
	return info, nil
}

func (r *TransactionRepository) GetTransactionCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.getExecutor().QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count)
	if err != nil {
		return 0, relationaldb.NewQueryError("get_transaction_count", "failed to count transactions", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (*relationaldb.TransactionInfo, error) {
	var (
		info          relationaldb.TransactionInfo
		hash, account []byte
		index         int64
	)
	if err := row.Scan(&hash, &index, &info.TxType, &account, &info.Result, &info.RawTxn, &info.TxnMeta); err != nil {
		return nil, err
	}
	if len(hash) != len(info.Hash) || len(account) != len(info.Account) {
		return nil, relationaldb.NewDataError("scan_transaction", "malformed transaction row", nil)
	}
	copy(info.Hash[:], hash)
	copy(info.Account[:], account)
	info.TxIndex = uint64(index)
	return &info, nil
}
