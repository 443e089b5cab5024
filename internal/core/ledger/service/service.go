// Package service is the ledger facade used by the RPC, gRPC and CLI
// front ends. It submits transactions to the engine, indexes applied ones
// into the history database and answers state queries.
package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/state"
	"github.com/LeJamon/goMemeLedger/internal/core/tx"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/registry"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
	"github.com/LeJamon/goMemeLedger/internal/logging"
	"github.com/LeJamon/goMemeLedger/internal/metrics"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"

	// registers the asset and funding transactions
	_ "github.com/LeJamon/goMemeLedger/internal/core/tx/account"
	_ "github.com/LeJamon/goMemeLedger/internal/core/tx/memecoin"
)

// Errors returned by submissions match these with errors.Is.
var (
	ErrDuplicateAsset    error = &tx.ResultError{Result: tx.TecDUPLICATE}
	ErrAssetNotFound     error = &tx.ResultError{Result: tx.TecOBJECT_NOT_FOUND}
	ErrCoinNotActive     error = &tx.ResultError{Result: tx.TecCOIN_NOT_ACTIVE}
	ErrOverflow          error = &tx.ResultError{Result: tx.TecOVERFLOW}
	ErrInsufficientFunds error = &tx.ResultError{Result: tx.TecINSUFFICIENT_FUNDS}
)

// Common errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrHistoryUnavailable = errors.New("transaction history is not enabled")
	ErrFundingDisabled    = errors.New("funding is only available to administrators")
	ErrNoStore            = errors.New("service requires a state store")
	ErrClosed             = errors.New("service is closed")
)

// Config holds configuration for the ledger Service
type Config struct {
	// Engine configures reserves and authority derivation
	Engine tx.EngineConfig

	// Store is the committed ledger state. The service closes it.
	Store *state.Store

	// History indexes applied transactions (optional). It must be open.
	History *relationaldb.Manager

	// Metrics receives apply and trade observations (optional)
	Metrics *metrics.Metrics

	Logger zerolog.Logger

	// AllowFunding permits AccountFund submissions
	AllowFunding bool
}

// Service manages ledger submissions and queries
type Service struct {
	mu     sync.RWMutex
	closed bool

	config  Config
	engine  *tx.Engine
	store   *state.Store
	history *relationaldb.Manager
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// New creates a new ledger Service
func New(cfg Config) (*Service, error) {
	if cfg.Store == nil {
		return nil, ErrNoStore
	}
	log := logging.Component(cfg.Logger, "ledger")
	engine := tx.NewEngine(cfg.Store, cfg.Engine, tx.WithLogger(logging.Component(cfg.Logger, "engine")))
	cfg.Engine = engine.Config()

	return &Service{
		config:  cfg,
		engine:  engine,
		store:   cfg.Store,
		history: cfg.History,
		metrics: cfg.Metrics,
		log:     log,
	}, nil
}

// EngineConfig returns the effective engine configuration.
func (s *Service) EngineConfig() tx.EngineConfig {
	return s.config.Engine
}

// HistoryEnabled reports whether applied transactions are indexed.
func (s *Service) HistoryEnabled() bool {
	return s.history != nil
}

// FundingAllowed reports whether AccountFund may be submitted.
func (s *Service) FundingAllowed() bool {
	return s.config.AllowFunding
}

// ServerInfo summarises the ledger.
type ServerInfo struct {
	TxCount        uint64 `json:"tx_count"`
	TotalCoins     uint64 `json:"total_coins,string"`
	DomainTag      string `json:"domain_tag"`
	ReserveBase    uint64 `json:"reserve_base"`
	ReserveInc     uint64 `json:"reserve_inc"`
	HistoryEnabled bool   `json:"history_enabled"`
	HistoryHealthy bool   `json:"history_healthy"`
}

// ServerInfo returns ledger counters and configuration.
func (s *Service) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()
	info, err := sle.ReadLedgerInfo(s.store)
	if err != nil {
		return nil, err
	}

	out := &ServerInfo{
		TxCount:        info.TxCount,
		TotalCoins:     info.TotalCoins,
		DomainTag:      s.config.Engine.DomainTag,
		ReserveBase:    s.config.Engine.ReserveBase,
		ReserveInc:     s.config.Engine.ReserveIncrement,
		HistoryEnabled: s.history != nil,
	}
	if s.history != nil {
		out.HistoryHealthy = s.history.HealthCheck(ctx) == nil
	}
	return out, nil
}

// Close closes the state store and the history database.
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.history != nil {
		errs = append(errs, s.history.Close(ctx))
	}
	errs = append(errs, s.store.Close())
	return errors.Join(errs...)
}

// acquire holds off Close until the returned release is called.
func (s *Service) acquire() (func(), error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, ErrClosed
	}
	return s.mu.RUnlock, nil
}

// view is a read view of committed state. Nothing written to it is kept.
func (s *Service) view() sle.LedgerView {
	return tx.NewApplyStateTable(s.store)
}

func (s *Service) registry() *registry.Registry {
	return registry.New(s.view(), s.config.Engine.DomainTag)
}
