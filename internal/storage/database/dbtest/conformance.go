// Package dbtest holds a behavioural suite every database.DB backend must pass.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMemeLedger/internal/storage/database"
)

// Run exercises db. The suite assumes db starts empty and closes it at the end.
func Run(t *testing.T, db database.DB) {
	t.Helper()
	ctx := context.Background()

	t.Run("read write delete", func(t *testing.T) {
		_, err := db.Read(ctx, []byte("missing"))
		require.ErrorIs(t, err, database.ErrKeyNotFound)

		require.NoError(t, db.Write(ctx, []byte("k1"), []byte("v1")))
		got, err := db.Read(ctx, []byte("k1"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)

		require.NoError(t, db.Delete(ctx, []byte("k1")))
		_, err = db.Read(ctx, []byte("k1"))
		require.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("batch", func(t *testing.T) {
		require.NoError(t, db.Write(ctx, []byte("b0"), []byte("old")))
		require.NoError(t, db.Batch(ctx, []database.BatchOperation{
			{Type: database.BatchPut, Key: []byte("b1"), Value: []byte("one")},
			{Type: database.BatchPut, Key: []byte("b2"), Value: []byte("two")},
			{Type: database.BatchDelete, Key: []byte("b0")},
		}))

		got, err := db.Read(ctx, []byte("b2"))
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), got)

		_, err = db.Read(ctx, []byte("b0"))
		require.ErrorIs(t, err, database.ErrKeyNotFound)

		err = db.Batch(ctx, []database.BatchOperation{
			{Type: database.BatchPut, Key: []byte("b3"), Value: []byte("three")},
			{Type: database.BatchOpType(99), Key: []byte("b4")},
		})
		require.ErrorIs(t, err, database.ErrBatchOperationFailed)
		_, err = db.Read(ctx, []byte("b3"))
		require.ErrorIs(t, err, database.ErrKeyNotFound, "failed batch must not apply")
	})

	t.Run("iterator", func(t *testing.T) {
		for _, k := range []string{"i1", "i2", "i3", "j1"} {
			require.NoError(t, db.Write(ctx, []byte(k), []byte("v-"+k)))
		}

		it, err := db.Iterator(ctx, []byte("i"), []byte("j"))
		require.NoError(t, err)

		var keys []string
		for it.Next() {
			keys = append(keys, string(it.Key()))
			assert.Equal(t, "v-"+string(it.Key()), string(it.Value()))
		}
		require.NoError(t, it.Error())
		require.NoError(t, it.Close())
		assert.Equal(t, []string{"i1", "i2", "i3"}, keys)
	})

	t.Run("closed", func(t *testing.T) {
		require.NoError(t, db.Close())
		_, err := db.Read(ctx, []byte("k"))
		require.ErrorIs(t, err, database.ErrDBClosed)
	})
}
