package sqldb

import (
	"context"
	"strings"

	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

// IndexRepository keeps one secondary index of transactions, keyed by
// account or by asset name.
type IndexRepository struct {
	exec    executor
	dialect dialect
	table   string
	column  string
}

func newAccountRepository(exec executor, d dialect) *IndexRepository {
	return &IndexRepository{exec: exec, dialect: d, table: "account_transactions", column: "account"}
}

func newAssetRepository(exec executor, d dialect) *IndexRepository {
	return &IndexRepository{exec: exec, dialect: d, table: "asset_transactions", column: "asset"}
}

func (r *IndexRepository) SaveAccountTransaction(ctx context.Context, accountID relationaldb.AccountID, txInfo *relationaldb.TransactionInfo) error {
	return r.save(ctx, "save_account_transaction", accountID[:], txInfo)
}

func (r *IndexRepository) GetAccountTxsPage(ctx context.Context, accountID relationaldb.AccountID, options relationaldb.PageOptions) (*relationaldb.TxPage, error) {
	return r.page(ctx, "get_account_txs_page", accountID[:], options)
}

func (r *IndexRepository) SaveAssetTransaction(ctx context.Context, asset string, txInfo *relationaldb.TransactionInfo) error {
	return r.save(ctx, "save_asset_transaction", asset, txInfo)
}

func (r *IndexRepository) GetAssetTxsPage(ctx context.Context, asset string, options relationaldb.PageOptions) (*relationaldb.TxPage, error) {
	return r.page(ctx, "get_asset_txs_page", asset, options)
}

func (r *IndexRepository) save(ctx context.Context, op string, key interface{}, txInfo *relationaldb.TransactionInfo) error {
	query := r.dialect.rebind(`INSERT INTO ` + r.table + ` (` + r.column + `, trans_id, tx_index)
			  VALUES (?, ?, ?)
			  ON CONFLICT (` + r.column + `, tx_index) DO NOTHING`)

	if _, err := r.exec.ExecContext(ctx, query, key, txInfo.Hash[:], int64(txInfo.TxIndex)); err != nil {
		return relationaldb.NewQueryError(op, "failed to save index row", err)
	}
	return nil
}

// page returns up to options.Limit transactions ordered by TxIndex,
// newest first unless options.Forward is set.
func (r *IndexRepository) page(ctx context.Context, op string, key interface{}, options relationaldb.PageOptions) (*relationaldb.TxPage, error) {
	limit := options.EffectiveLimit()

	var q strings.Builder
	q.WriteString(`SELECT ` + txColumns + ` FROM ` + r.table + ` i
		JOIN transactions t ON t.trans_id = i.trans_id
		WHERE i.` + r.column + ` = ?`)
	args := []interface{}{key}
	if options.Marker != nil {
		if options.Forward {
			q.WriteString(` AND i.tx_index > ?`)
		} else {
			q.WriteString(` AND i.tx_index < ?`)
		}
		args = append(args, int64(*options.Marker))
	}
	if options.Forward {
		q.WriteString(` ORDER BY i.tx_index ASC`)
	} else {
		q.WriteString(` ORDER BY i.tx_index DESC`)
	}
	// One extra row tells whether another page follows.
	q.WriteString(` LIMIT ?`)
	args = append(args, int64(limit)+1)

	rows, err := r.exec.QueryContext(ctx, r.dialect.rebind(q.String()), args...)
	if err != nil {
		return nil, relationaldb.NewQueryError(op, "failed to query index", err)
	}
	defer rows.Close()

	result := &relationaldb.TxPage{
		Transactions: make([]relationaldb.TransactionInfo, 0, limit),
		Limit:        limit,
	}
	for rows.Next() {
		info, err := scanTransaction(rows)
		if err != nil {
			return nil, relationaldb.NewQueryError(op, "failed to scan row", err)
		}
		if uint32(len(result.Transactions)) == limit {
			marker := result.Transactions[len(result.Transactions)-1].TxIndex
			result.Marker = &marker
			break
		}
		result.Transactions = append(result.Transactions, *info)
	}
	if err := rows.Err(); err != nil {
		return nil, relationaldb.NewQueryError(op, "error iterating rows", err)
	}
	return result, nil
}
