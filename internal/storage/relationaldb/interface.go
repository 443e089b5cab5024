package relationaldb

import (
	"context"
	"encoding/hex"
	"fmt"
)

// Hash represents a 256-bit transaction id
type Hash [32]byte

// AccountID represents a 20-byte account identifier
type AccountID [20]byte

// DefaultPageLimit applies when a page query asks for no limit.
const DefaultPageLimit = 200

// MaxPageLimit caps page queries.
const MaxPageLimit = 1000

// TransactionInfo is one applied transaction as stored in history.
type TransactionInfo struct {
	Hash    Hash      `json:"hash"`
	TxIndex uint64    `json:"tx_index"`
	TxType  string    `json:"tx_type"`
	Account AccountID `json:"account"`
	Result  string    `json:"result"`
	RawTxn  []byte    `json:"raw_txn"`
	TxnMeta []byte    `json:"txn_meta"`
}

// PageOptions selects a page of history. Marker is the TxIndex to resume
// after, as returned by the previous page.
type PageOptions struct {
	Limit   uint32  `json:"limit"`
	Marker  *uint64 `json:"marker,omitempty"`
	Forward bool    `json:"forward"`
}

// EffectiveLimit clamps Limit into [1, MaxPageLimit].
func (o PageOptions) EffectiveLimit() uint32 {
	switch {
	case o.Limit == 0:
		return DefaultPageLimit
	case o.Limit > MaxPageLimit:
		return MaxPageLimit
	default:
		return o.Limit
	}
}

// TxPage is one page of history. Marker is set when more rows follow.
type TxPage struct {
	Transactions []TransactionInfo `json:"transactions"`
	Limit        uint32            `json:"limit"`
	Marker       *uint64           `json:"marker,omitempty"`
}

// TransactionRepository stores applied transactions by hash
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txInfo *TransactionInfo) error
	GetTransaction(ctx context.Context, hash Hash) (*TransactionInfo, error)
	GetTransactionCount(ctx context.Context) (int64, error)
}

// AccountTransactionRepository indexes transactions by affected account
type AccountTransactionRepository interface {
	SaveAccountTransaction(ctx context.Context, accountID AccountID, txInfo *TransactionInfo) error
	GetAccountTxsPage(ctx context.Context, accountID AccountID, options PageOptions) (*TxPage, error)
}

// AssetTransactionRepository indexes transactions by asset name
type AssetTransactionRepository interface {
	SaveAssetTransaction(ctx context.Context, asset string, txInfo *TransactionInfo) error
	GetAssetTxsPage(ctx context.Context, asset string, options PageOptions) (*TxPage, error)
}

// SystemRepository handles system-level database operations
type SystemRepository interface {
	Ping(ctx context.Context) error
}

// TransactionContext represents a database transaction context with repository access
type TransactionContext interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	Transaction() TransactionRepository
	AccountTransaction() AccountTransactionRepository
	AssetTransaction() AssetTransactionRepository
}

// RepositoryManager provides access to all repositories and transaction management
type RepositoryManager interface {
	// Repository access
	Transaction() TransactionRepository
	AccountTransaction() AccountTransactionRepository
	AssetTransaction() AssetTransactionRepository
	System() SystemRepository

	// Connection management
	Open(ctx context.Context) error
	Close(ctx context.Context) error

	// Transaction management
	WithTransaction(ctx context.Context, fn func(TransactionContext) error) error
}

func (h Hash) String() string {
	return fmt.Sprintf("%X", h[:])
}

// ParseHash parses a hex string into a Hash
func ParseHash(s string) (Hash, error) {
	var h Hash
	if len(s) != 64 {
		return h, fmt.Errorf("invalid hash length: expected 64, got %d", len(s))
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("invalid hex string: %w", err)
	}
	copy(h[:], decoded)
	return h, nil
}

func (a AccountID) String() string {
	return fmt.Sprintf("%x", a[:])
}
