package leveldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/storage/database/dbtest"
)

func TestMemoryLevelDB(t *testing.T) {
	db, err := Open("", 0)
	require.NoError(t, err)
	dbtest.Run(t, db)
}

func TestFileLevelDB(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "state"), 1<<20)
	require.NoError(t, err)
	dbtest.Run(t, db)
}
