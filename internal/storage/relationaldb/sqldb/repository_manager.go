package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

// RepositoryManager implements relationaldb.RepositoryManager on database/sql
type RepositoryManager struct {
	db      *sql.DB
	config  *relationaldb.Config
	dialect dialect

	transactionRepo        *TransactionRepository
	accountTransactionRepo *IndexRepository
	assetTransactionRepo   *IndexRepository
	systemRepo             *SystemRepository
}

// NewRepositoryManager creates a repository manager for config.Driver
func NewRepositoryManager(config *relationaldb.Config) (*RepositoryManager, error) {
	if err := config.Validate(); err != nil {
		return nil, relationaldb.NewConfigurationError("new_repository_manager", "invalid configuration", err)
	}
	return &RepositoryManager{
		config:  config,
		dialect: dialectFor(config.Driver),
	}, nil
}

func (rm *RepositoryManager) Open(ctx context.Context) error {
	if rm.db != nil {
		_ = rm.db.Close()
		rm.db = nil
	}

	connStr, err := rm.config.BuildConnectionString()
	if err != nil {
		return relationaldb.NewConfigurationError("open", "failed to build connection string", err)
	}

	sqlDB, err := sql.Open(rm.config.Driver, connStr)
	if err != nil {
		return relationaldb.NewConnectionError("open", "failed to open database connection", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(rm.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(rm.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(rm.config.ConnMaxLifetime)

	ctxTimeout, cancel := context.WithTimeout(ctx, rm.config.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctxTimeout); err != nil {
		_ = sqlDB.Close()
		return relationaldb.NewConnectionError("open", "failed to ping database", err)
	}

	rm.db = sqlDB

	if err := rm.initSchema(ctx); err != nil {
		_ = rm.db.Close()
		rm.db = nil
		return err
	}

	rm.transactionRepo = &TransactionRepository{db: rm.db, dialect: rm.dialect}
	rm.accountTransactionRepo = newAccountRepository(rm.db, rm.dialect)
	rm.assetTransactionRepo = newAssetRepository(rm.db, rm.dialect)
	rm.systemRepo = &SystemRepository{db: rm.db, timeout: rm.config.DefaultTimeout}
	return nil
}

func (rm *RepositoryManager) Close(ctx context.Context) error {
	if rm.db == nil {
		return nil
	}

	err := rm.db.Close()
	rm.db = nil
	rm.transactionRepo = nil
	rm.accountTransactionRepo = nil
	rm.assetTransactionRepo = nil
	rm.systemRepo = nil

	if err != nil {
		return relationaldb.NewConnectionError("close", "failed to close database connection", err)
	}
	return nil
}

func (rm *RepositoryManager) Transaction() relationaldb.TransactionRepository {
	return rm.transactionRepo
}

func (rm *RepositoryManager) AccountTransaction() relationaldb.AccountTransactionRepository {
	return rm.accountTransactionRepo
}

func (rm *RepositoryManager) AssetTransaction() relationaldb.AssetTransactionRepository {
	return rm.assetTransactionRepo
}

func (rm *RepositoryManager) System() relationaldb.SystemRepository {
	if rm.systemRepo == nil {
		return closedSystem{}
	}
	return rm.systemRepo
}

// WithTransaction runs fn in a database transaction, committing if it
// returns nil and rolling back otherwise.
func (rm *RepositoryManager) WithTransaction(ctx context.Context, fn func(relationaldb.TransactionContext) error) (err error) {
	if rm.db == nil {
		return relationaldb.ErrDatabaseClosed
	}

	sqlTx, err := rm.db.BeginTx(ctx, nil)
	if err != nil {
		return relationaldb.NewTransactionError("begin", "failed to begin transaction", err)
	}
	tc := newTransactionContext(sqlTx, rm.dialect)

	defer func() {
		if p := recover(); p != nil {
			_ = tc.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(tc); err != nil {
		_ = tc.Rollback(ctx)
		return err
	}
	return tc.Commit(ctx)
}

func (rm *RepositoryManager) initSchema(ctx context.Context) error {
	for _, query := range rm.dialect.schema() {
		if _, err := rm.db.ExecContext(ctx, query); err != nil {
			return relationaldb.NewSchemaError("init_schema", fmt.Sprintf("failed to execute schema query on %s", rm.config.Driver), err)
		}
	}
	return nil
}
