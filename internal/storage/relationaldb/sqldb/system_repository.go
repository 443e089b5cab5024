package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/LeJamon/goMemeLedger/internal/storage/relationaldb"
)

// SystemRepository implements relationaldb.SystemRepository
type SystemRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func (r *SystemRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return relationaldb.NewConnectionError("ping", "database ping failed", err)
	}
	return nil
}

// closedSystem answers for a manager that is not open.
type closedSystem struct{}

func (closedSystem) Ping(context.Context) error {
	return relationaldb.NewConnectionError("ping", "database is not open", relationaldb.ErrDatabaseClosed)
}
