package relationaldb

import (
	"context"
	"sync"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
)

// Manager owns the lifecycle of a RepositoryManager and writes history
// records atomically.
type Manager struct {
	repoManager RepositoryManager
	config      *Config
	logger      zerolog.Logger

	mu        sync.RWMutex
	connected bool
	lastError error
}

// ManagerOption defines functional options for Manager
type ManagerOption func(*Manager)

// WithLogger sets the logger for the manager
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new database manager
func NewManager(repoManager RepositoryManager, config *Config, options ...ManagerOption) *Manager {
	manager := &Manager{
		repoManager: repoManager,
		config:      config,
		logger:      zerolog.Nop(),
	}
	for _, option := range options {
		option(manager)
	}
	return manager
}

// Open connects to the database, retrying retryable failures up to
// config.MaxRetries times with backoff.
func (m *Manager) Open(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return nil
	}

	err := retry.Do(
		func() error {
			if err := m.repoManager.Open(ctx); err != nil {
				return err
			}
			return m.repoManager.System().Ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(uint(m.config.MaxRetries)+1),
		retry.Delay(m.config.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
		retry.OnRetry(func(n uint, err error) {
			m.logger.Warn().Err(err).Uint("attempt", n+1).Str("driver", m.config.Driver).Msg("history database connect failed, retrying")
		}),
	)
	if err != nil {
		m.lastError = err
		m.logger.Error().Err(err).Str("driver", m.config.Driver).Msg("failed to open history database")
		return WrapError(err, "open_database")
	}

	m.connected = true
	m.lastError = nil
	m.logger.Info().Str("driver", m.config.Driver).Msg("history database opened")
	return nil
}

// Close closes the database connection
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}
	m.connected = false
	if err := m.repoManager.Close(ctx); err != nil {
		m.lastError = err
		return WrapError(err, "close_database")
	}
	m.logger.Info().Msg("history database closed")
	return nil
}

// IsConnected returns whether the database is connected
func (m *Manager) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// LastError returns the last connection error
func (m *Manager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastError
}

// HealthCheck pings the database.
func (m *Manager) HealthCheck(ctx context.Context) error {
	if !m.IsConnected() {
		return ErrDatabaseClosed
	}
	return m.repoManager.System().Ping(ctx)
}

// Repositories returns the underlying repository manager.
func (m *Manager) Repositories() RepositoryManager {
	return m.repoManager
}

// Record is one applied transaction together with what it is indexed under.
type Record struct {
	Info     TransactionInfo
	Accounts []AccountID
	Asset    string
}

// Index stores a record and its account and asset index rows in one
// database transaction.
func (m *Manager) Index(ctx context.Context, rec *Record) error {
	if !m.IsConnected() {
		return ErrDatabaseClosed
	}
	return m.repoManager.WithTransaction(ctx, func(tc TransactionContext) error {
		if err := tc.Transaction().SaveTransaction(ctx, &rec.Info); err != nil {
			return err
		}
		seen := make(map[AccountID]struct{}, len(rec.Accounts))
		for _, account := range rec.Accounts {
			if _, dup := seen[account]; dup {
				continue
			}
			seen[account] = struct{}{}
			if err := tc.AccountTransaction().SaveAccountTransaction(ctx, account, &rec.Info); err != nil {
				return err
			}
		}
		if rec.Asset != "" {
			if err := tc.AssetTransaction().SaveAssetTransaction(ctx, rec.Asset, &rec.Info); err != nil {
				return err
			}
		}
		return nil
	})
}
