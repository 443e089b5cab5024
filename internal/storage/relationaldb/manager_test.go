package relationaldb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyRepos fails Open a fixed number of times before succeeding.
type flakyRepos struct {
	failures int
	openErr  func() error
	opens    int
	closed   bool
}

func (f *flakyRepos) Open(context.Context) error {
	f.opens++
	if f.opens <= f.failures {
		return f.openErr()
	}
	return nil
}

func (f *flakyRepos) Close(context.Context) error {
	f.closed = true
	return nil
}

func (f *flakyRepos) Ping(context.Context) error                       { return nil }
func (f *flakyRepos) System() SystemRepository                         { return f }
func (f *flakyRepos) Transaction() TransactionRepository               { return nil }
func (f *flakyRepos) AccountTransaction() AccountTransactionRepository { return nil }
func (f *flakyRepos) AssetTransaction() AssetTransactionRepository     { return nil }
func (f *flakyRepos) WithTransaction(context.Context, func(TransactionContext) error) error {
	return nil
}

func testConfig(retries int) *Config {
	cfg := SQLiteConfig("unused.db")
	cfg.MaxRetries = retries
	cfg.RetryDelay = time.Millisecond
	return cfg
}

func TestManagerOpenRetriesConnectionErrors(t *testing.T) {
	repos := &flakyRepos{
		failures: 2,
		openErr:  func() error { return NewConnectionError("open", "refused", errors.New("connection refused")) },
	}
	m := NewManager(repos, testConfig(3))

	require.NoError(t, m.Open(context.Background()))
	assert.Equal(t, 3, repos.opens)
	assert.True(t, m.IsConnected())
	assert.NoError(t, m.LastError())

	// Opening again is a no-op.
	require.NoError(t, m.Open(context.Background()))
	assert.Equal(t, 3, repos.opens)

	require.NoError(t, m.Close(context.Background()))
	assert.True(t, repos.closed)
	assert.False(t, m.IsConnected())
}

func TestManagerOpenGivesUp(t *testing.T) {
	repos := &flakyRepos{
		failures: 10,
		openErr:  func() error { return NewConnectionError("open", "refused", errors.New("connection refused")) },
	}
	m := NewManager(repos, testConfig(2))

	err := m.Open(context.Background())
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
	assert.Equal(t, 3, repos.opens)
	assert.False(t, m.IsConnected())
	assert.Error(t, m.LastError())
}

func TestManagerOpenDoesNotRetrySchemaErrors(t *testing.T) {
	repos := &flakyRepos{
		failures: 10,
		openErr:  func() error { return NewSchemaError("init_schema", "bad", errors.New("syntax error")) },
	}
	m := NewManager(repos, testConfig(5))

	err := m.Open(context.Background())
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
	assert.Equal(t, 1, repos.opens)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "sqlite3 alias", mutate: func(c *Config) { c.Driver = "sqlite3" }},
		{name: "postgresql alias", mutate: func(c *Config) { c.Driver = "postgresql" }},
		{name: "unknown driver", mutate: func(c *Config) { c.Driver = "mysql" }, wantErr: ErrInvalidDriver},
		{name: "no dsn", mutate: func(c *Config) { c.DSN = "" }, wantErr: ErrMissingDatabase},
		{name: "idle above open", mutate: func(c *Config) { c.MaxOpenConns, c.MaxIdleConns = 2, 3 }, wantErr: ErrMaxIdleExceedsMaxOpen},
		{name: "zero timeout", mutate: func(c *Config) { c.DefaultTimeout = 0 }, wantErr: ErrInvalidTimeout},
		{name: "negative retries", mutate: func(c *Config) { c.MaxRetries = -1 }, wantErr: ErrInvalidMaxRetries},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildConnectionString(t *testing.T) {
	cfg := SQLiteConfig("/tmp/history.db")
	dsn, err := cfg.BuildConnectionString()
	require.NoError(t, err)
	assert.Contains(t, dsn, "file:/tmp/history.db?")
	assert.Contains(t, dsn, "journal_mode%28WAL%29")

	pg := PostgresConfig("postgres://ledger:secret@db:5432/history?sslmode=disable")
	dsn, err = pg.BuildConnectionString()
	require.NoError(t, err)
	assert.Equal(t, pg.DSN, dsn)
	assert.NotContains(t, pg.String(), "secret")
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsRetryable(NewConnectionError("open", "x", nil)))
	assert.True(t, IsRetryable(NewQueryError("save", "x", errors.New("database is locked"))))
	assert.False(t, IsRetryable(NewQueryError("save", "x", errors.New("syntax error"))))
	assert.False(t, IsRetryable(errors.New("plain")))

	wrapped := WrapError(errors.New("boom"), "op")
	var dbErr *DatabaseError
	require.True(t, errors.As(wrapped, &dbErr))
	assert.Equal(t, ErrorTypeUnknown, dbErr.Type)

	q := NewQueryError("save", "x", nil)
	assert.Same(t, q, WrapError(q, "other"))
	assert.Nil(t, WrapError(nil, "op"))
}
