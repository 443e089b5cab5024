package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/LeJamon/goMemeLedger/internal/config"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/service"
	"github.com/LeJamon/goMemeLedger/internal/core/ledger/state"
	"github.com/LeJamon/goMemeLedger/internal/logging"
	"github.com/LeJamon/goMemeLedger/internal/metrics"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb/sqldb"
)

// loadConfig reads the configuration selected by --conf and applies --debug.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Log.Level = zerolog.LevelDebugValue
	}
	return cfg, nil
}

// node is an opened ledger with the configuration it was built from.
type node struct {
	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics
	ledger  *service.Service
}

// openNode opens the state store and, when enabled, the history database.
// Admin-only transactions are allowed: whoever runs the binary owns the
// node's files.
func openNode(ctx context.Context, cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) (*node, error) {
	store, err := state.Open(cfg.NodeDB.BackendConfig(), cfg.NodeDB.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open node_db: %w", err)
	}

	var history *relationaldb.Manager
	if cfg.History.Enabled {
		history, err = openHistory(ctx, &cfg.History, log)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	ledger, err := service.New(service.Config{
		Engine:       cfg.Ledger.EngineConfig(),
		Store:        store,
		History:      history,
		Metrics:      m,
		Logger:       log,
		AllowFunding: true,
	})
	if err != nil {
		if history != nil {
			_ = history.Close(ctx)
		}
		store.Close()
		return nil, err
	}
	return &node{cfg: cfg, log: log, metrics: m, ledger: ledger}, nil
}

func openHistory(ctx context.Context, hc *config.HistoryConfig, log zerolog.Logger) (*relationaldb.Manager, error) {
	dbCfg := hc.DatabaseConfig()
	if dbCfg.Driver == relationaldb.DriverSQLite {
		if dir := filepath.Dir(dbCfg.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create history directory: %w", err)
			}
		}
	}

	repos, err := sqldb.NewRepositoryManager(dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure history: %w", err)
	}
	manager := relationaldb.NewManager(repos, dbCfg,
		relationaldb.WithLogger(logging.Component(log, "history")))
	if err := manager.Open(ctx); err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return manager, nil
}

func (n *node) Close(ctx context.Context) error {
	return n.ledger.Close(ctx)
}

// withNode runs fn against a node opened from the command's configuration.
// Logs go to stderr so command output stays parseable.
func withNode(cmd *cobra.Command, fn func(ctx context.Context, n *node) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.SetupWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	n, err := openNode(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := n.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to close ledger")
		}
	}()
	return fn(ctx, n)
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
