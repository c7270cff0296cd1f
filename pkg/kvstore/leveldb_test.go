package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLevelDB(t *testing.T) *LevelDB {
	t.Helper()

	store, err := OpenLevelDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestLevelDBGetPut(t *testing.T) {
	ctx := context.Background()
	store := openTestLevelDB(t)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Put(ctx, "user_u1", []byte(`{"totalPoints":"20"}`)))

	got, getErr := store.Get(ctx, "user_u1")
	require.NoError(t, getErr)
	assert.JSONEq(t, `{"totalPoints":"20"}`, string(got))
}

func TestLevelDBRangeScanSkipsHistoryKeys(t *testing.T) {
	ctx := context.Background()
	store := openTestLevelDB(t)

	require.NoError(t, store.Put(ctx, "a", []byte("1")))
	require.NoError(t, store.Put(ctx, "a", []byte("2")))
	require.NoError(t, store.Put(ctx, "b", []byte("3")))

	iter, err := store.RangeScan(ctx, "", "")
	require.NoError(t, err)
	defer func() { _ = iter.Close() }()

	got := map[string]string{}
	for iter.Next() {
		got[iter.Key()] = string(iter.Value())
	}
	require.NoError(t, iter.Err())

	// только текущие значения, версии истории в скан не попадают
	assert.Equal(t, map[string]string{"a": "2", "b": "3"}, got)
}

func TestLevelDBRangeScanBounds(t *testing.T) {
	ctx := context.Background()
	store := openTestLevelDB(t)

	for _, key := range []string{"a", "b", "c", "d"} {
		require.NoError(t, store.Put(ctx, key, []byte("v")))
	}

	iter, err := store.RangeScan(ctx, "b", "d")
	require.NoError(t, err)
	defer func() { _ = iter.Close() }()

	var keys []string
	for iter.Next() {
		keys = append(keys, iter.Key())
	}
	require.NoError(t, iter.Err())
	assert.Equal(t, []string{"b", "c"}, keys)
}

func TestLevelDBHistory(t *testing.T) {
	ctx := context.Background()
	store := openTestLevelDB(t)

	require.NoError(t, store.Put(ctx, "k", []byte("v1")))
	require.NoError(t, store.Put(ctx, "k", []byte("v2")))
	require.NoError(t, store.Put(ctx, "other", []byte("x")))

	iter, err := store.History(ctx, "k")
	require.NoError(t, err)
	defer func() { _ = iter.Close() }()

	var values []string
	for iter.Next() {
		values = append(values, string(iter.Value()))
		assert.NotEmpty(t, iter.TxID())
		assert.False(t, iter.Timestamp().IsZero())
	}
	require.NoError(t, iter.Err())
	assert.Equal(t, []string{"v1", "v2"}, values)
}
