package tx

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/LeJamon/goMemeLedger/internal/core/amount"
	"github.com/LeJamon/goMemeLedger/internal/core/authority"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	crypto "github.com/LeJamon/goMemeLedger/internal/crypto/common"
)

// DefaultDomainTag is the fixed seed prefix of every asset authority.
const DefaultDomainTag = "meme_coin"

// txnPrefix is the hash prefix for transaction ids: "TXN\x00".
var txnPrefix = []byte{0x54, 0x58, 0x4E, 0x00}

// EngineConfig holds configuration for the transaction engine
type EngineConfig struct {
	// ReserveBase is the base reserve every account must keep
	ReserveBase uint64

	// ReserveIncrement is the reserve per owned object
	ReserveIncrement uint64

	// DomainTag and ProgramID seed the asset authority derivation
	DomainTag string
	ProgramID []byte
}

// Seeds returns the authority seeds for an asset name.
func (c EngineConfig) Seeds(name string) authority.Seeds {
	return authority.Seeds{
		DomainTag: c.DomainTag,
		Name:      name,
		ProgramID: c.ProgramID,
	}
}

// AccountReserve is ReserveBase + ownerCount * ReserveIncrement,
// saturating at the maximum.
func (c EngineConfig) AccountReserve(ownerCount uint32) uint64 {
	inc, err := amount.Mul(uint64(ownerCount), c.ReserveIncrement)
	if err != nil {
		return math.MaxUint64
	}
	total, err := amount.Add(c.ReserveBase, inc)
	if err != nil {
		return math.MaxUint64
	}
	return total
}

// Store is the committed ledger state the engine applies against.
type Store interface {
	sle.ReadView

	// Commit writes all changes atomically.
	Commit(ctx context.Context, changes []sle.Change) error
}

// ApplyResult contains the result of applying a transaction
type ApplyResult struct {
	// Result is the transaction result code
	Result Result

	// Applied indicates if the transaction was applied to the ledger
	Applied bool

	// Hash identifies the transaction. Zero when rejected before hashing.
	Hash [32]byte

	// TxIndex is the position in the ledger history of an applied transaction
	TxIndex uint64

	// Metadata contains the changes made by the transaction
	Metadata *Metadata

	// Message is a human-readable result message
	Message string
}

// Metadata tracks changes made by a transaction
type Metadata struct {
	// AffectedNodes lists all nodes that were created, modified, or deleted
	AffectedNodes []AffectedNode `json:"AffectedNodes"`

	// TransactionIndex is the index in the ledger history
	TransactionIndex uint64 `json:"TransactionIndex"`

	// TransactionResult is the result code
	TransactionResult Result `json:"TransactionResult"`

	// Trade is set by buys and sells
	Trade *TradeResult `json:"Trade,omitempty"`
}

// TradeResult records what a buy or sell settled.
type TradeResult struct {
	Asset string `json:"Asset"`
	Units uint64 `json:"Units,string"`
	Gross uint64 `json:"Gross,string"`
	Net   uint64 `json:"Net,string"`
	Fee   uint64 `json:"Fee,string"`
}

// AffectedNode describes one ledger entry touched by a transaction.
type AffectedNode struct {
	// NodeType is CreatedNode, ModifiedNode or DeletedNode
	NodeType        string
	LedgerEntryType string
	LedgerIndex     string
}

type affectedNodeBody struct {
	LedgerEntryType string `json:"LedgerEntryType"`
	LedgerIndex     string `json:"LedgerIndex"`
}

// MarshalJSON renders the node wrapped in its node type,
// e.g. {"CreatedNode":{"LedgerEntryType":"Holding",...}}.
func (n AffectedNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]affectedNodeBody{
		n.NodeType: {LedgerEntryType: n.LedgerEntryType, LedgerIndex: n.LedgerIndex},
	})
}

// UnmarshalJSON reads the wrapped form produced by MarshalJSON.
func (n *AffectedNode) UnmarshalJSON(data []byte) error {
	var wrapped map[string]affectedNodeBody
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if len(wrapped) != 1 {
		return fmt.Errorf("affected node: expected one node type, got %d", len(wrapped))
	}
	for nodeType, body := range wrapped {
		n.NodeType = nodeType
		n.LedgerEntryType = body.LedgerEntryType
		n.LedgerIndex = body.LedgerIndex
	}
	return nil
}

// Engine processes transactions against a ledger
type Engine struct {
	// mu serialises applies; a trade touches the record and two account roots
	mu sync.Mutex

	store  Store
	config EngineConfig

	currency CurrencyFactory
	units    UnitFactory

	log zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithLedgers replaces the collaborator ledgers bound to each transaction.
func WithLedgers(c CurrencyFactory, u UnitFactory) Option {
	return func(e *Engine) {
		if c != nil {
			e.currency = c
		}
		if u != nil {
			e.units = u
		}
	}
}

// NewEngine creates a new transaction engine
func NewEngine(store Store, config EngineConfig, opts ...Option) *Engine {
	if config.DomainTag == "" {
		config.DomainTag = DefaultDomainTag
	}
	e := &Engine{
		store:    store,
		config:   config,
		currency: DefaultCurrency,
		units:    DefaultUnits,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() EngineConfig {
	return e.config
}

// computeTransactionHash computes the hash of a transaction.
// The index salts the hash so identical requests get distinct ids.
func computeTransactionHash(tx Transaction, index uint64) ([32]byte, error) {
	txBytes, err := json.Marshal(tx)
	if err != nil {
		return [32]byte{}, err
	}
	var idx [8]byte
	binary.BigEndian.PutUint64(idx[:], index)
	return crypto.Sha512Half(txnPrefix, txBytes, idx[:]), nil
}

// Apply processes a transaction and applies it to the ledger.
// Either every write of the transaction is committed or none is.
func (e *Engine) Apply(ctx context.Context, tx Transaction) ApplyResult {
	// Step 1: Preflight checks (syntax validation)
	if result := e.preflight(tx); !result.IsSuccess() {
		return ApplyResult{Result: result, Message: result.Message()}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	table := NewApplyStateTable(e.store)
	accountID, _ := tx.GetCommon().AccountID()

	// Step 2: Preclaim checks (validate against ledger state)
	if result := e.preclaim(table, tx, accountID); !result.IsSuccess() {
		return ApplyResult{Result: result, Message: result.Message()}
	}

	info, err := sle.ReadLedgerInfo(table)
	if err != nil {
		return e.internal("failed to read ledger info", err)
	}

	// Step 3: Compute transaction hash
	txHash, err := computeTransactionHash(tx, info.TxCount)
	if err != nil {
		return e.internal("failed to compute transaction hash", err)
	}

	metadata := &Metadata{
		AffectedNodes:     make([]AffectedNode, 0),
		TransactionIndex:  info.TxCount,
		TransactionResult: TesSUCCESS,
	}
	applyCtx := &ApplyContext{
		View:      table,
		AccountID: accountID,
		Config:    e.config,
		TxHash:    txHash,
		TxIndex:   info.TxCount,
		Currency:  e.currency(table),
		Units:     e.units(table),
		Metadata:  metadata,
		Log:       e.log.With().Str("tx", tx.TxType().String()).Str("account", tx.GetCommon().Account).Logger(),
	}

	// Step 4: Apply the transaction
	result := e.doApply(applyCtx, tx)
	metadata.TransactionResult = result

	if !result.IsApplied() {
		// Dropping the table discards every staged write.
		e.log.Debug().
			Str("tx", tx.TxType().String()).
			Str("result", result.String()).
			Msg("transaction not applied")
		return ApplyResult{
			Result:   result,
			Hash:     txHash,
			Metadata: metadata,
			Message:  result.Message(),
		}
	}

	// Step 5: Count the transaction and commit
	info, err = sle.ReadLedgerInfo(table)
	if err != nil {
		return e.internal("failed to read ledger info", err)
	}
	info.TxCount++
	if err := sle.PutLedgerInfo(table, info); err != nil {
		return e.internal("failed to update ledger info", err)
	}

	changes, nodes := table.Apply()
	metadata.AffectedNodes = nodes
	if err := e.store.Commit(ctx, changes); err != nil {
		return e.internal("failed to commit state changes", err)
	}

	return ApplyResult{
		Result:   result,
		Applied:  true,
		Hash:     txHash,
		TxIndex:  metadata.TransactionIndex,
		Metadata: metadata,
		Message:  result.Message(),
	}
}

func (e *Engine) internal(msg string, err error) ApplyResult {
	e.log.Error().Err(err).Msg(msg)
	return ApplyResult{
		Result:  TefINTERNAL,
		Message: msg + ": " + err.Error(),
	}
}

// preflight performs initial validation on the transaction
func (e *Engine) preflight(tx Transaction) Result {
	common := tx.GetCommon()

	// Account is required
	if common.Account == "" {
		return TemBAD_SRC_ACCOUNT
	}

	// TransactionType is required
	if common.TransactionType == "" {
		return TemINVALID
	}

	if err := tx.Validate(); err != nil {
		return parseValidationError(err)
	}

	return TesSUCCESS
}

// parseValidationError extracts a result code from a validation error message.
// If the error message starts with a known malformed code prefix (e.g., "temBAD_AMOUNT:"),
// it returns the corresponding Result. Otherwise, it returns TemINVALID.
func parseValidationError(err error) Result {
	prefix, _, found := strings.Cut(err.Error(), ":")
	if !found {
		return TemINVALID
	}
	if r, ok := ResultFromString(prefix); ok && r.IsTem() {
		return r
	}
	return TemINVALID
}

// preclaim checks the transaction against committed state.
func (e *Engine) preclaim(view sle.ReadView, tx Transaction, accountID [20]byte) Result {
	if p, ok := tx.(SourceProvisioner); ok && p.ProvisionsSource() {
		return TesSUCCESS
	}

	// Check that the source account exists
	exists, err := view.Exists(keylet.Account(accountID))
	if err != nil {
		return TefINTERNAL
	}
	if !exists {
		return TerNO_ACCOUNT
	}
	return TesSUCCESS
}

// doApply runs the type-specific handler against the staged view.
func (e *Engine) doApply(ctx *ApplyContext, tx Transaction) (result Result) {
	appliable, ok := tx.(Appliable)
	if !ok {
		return TemUNKNOWN
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Str("tx", tx.TxType().String()).Msg("transaction handler panicked")
			result = TefEXCEPTION
		}
	}()

	return appliable.Apply(ctx)
}
