// Package sqldb implements the history repositories on database/sql for
// SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq).
package sqldb

import (
	"strconv"
	"strings"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

// dialect holds what differs between the supported drivers.
type dialect struct {
	blob        string
	numberedArg bool
}

func dialectFor(driver string) dialect {
	if driver == relationaldb.DriverPostgres {
		return dialect{blob: "BYTEA", numberedArg: true}
	}
	return dialect{blob: "BLOB"}
}

// rebind rewrites ? placeholders to $n for drivers that need it.
func (d dialect) rebind(query string) string {
	if !d.numberedArg {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (d dialect) schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			trans_id ` + d.blob + ` PRIMARY KEY,
			tx_index BIGINT NOT NULL UNIQUE,
			tx_type VARCHAR(32) NOT NULL,
			account ` + d.blob + ` NOT NULL,
			result VARCHAR(32) NOT NULL,
			raw_txn ` + d.blob + ` NOT NULL,
			txn_meta ` + d.blob + `
		)`,
		`CREATE TABLE IF NOT EXISTS account_transactions (
			account ` + d.blob + ` NOT NULL,
			trans_id ` + d.blob + ` NOT NULL,
			tx_index BIGINT NOT NULL,
			PRIMARY KEY (account, tx_index)
		)`,
		`CREATE TABLE IF NOT EXISTS asset_transactions (
			asset VARCHAR(50) NOT NULL,
			trans_id ` + d.blob + ` NOT NULL,
			tx_index BIGINT NOT NULL,
			PRIMARY KEY (asset, tx_index)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_account_transactions_trans_id ON account_transactions(trans_id)`,
		`CREATE INDEX IF NOT EXISTS idx_asset_transactions_trans_id ON asset_transactions(trans_id)`,
	}
}
