package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetPut(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Put(ctx, "k1", []byte("v1")))

	got, getErr := store.Get(ctx, "k1")
	require.NoError(t, getErr)
	assert.Equal(t, []byte("v1"), got)

	// возвращаемое значение - копия, мутации снаружи не задевают хранилище
	got[0] = 'x'
	fresh, freshErr := store.Get(ctx, "k1")
	require.NoError(t, freshErr)
	assert.Equal(t, []byte("v1"), fresh)
}

func TestMemoryRangeScan(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for _, key := range []string{"b", "a", "c", "d"} {
		require.NoError(t, store.Put(ctx, key, []byte("v_"+key)))
	}

	cases := []struct {
		name     string
		startKey string
		endKey   string
		want     []string
	}{
		{name: "unbounded", want: []string{"a", "b", "c", "d"}},
		{name: "half open", startKey: "b", endKey: "d", want: []string{"b", "c"}},
		{name: "from start", endKey: "c", want: []string{"a", "b"}},
		{name: "empty interval", startKey: "x", endKey: "y", want: []string{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			iter, err := store.RangeScan(ctx, c.startKey, c.endKey)
			require.NoError(t, err)
			defer func() { _ = iter.Close() }()

			keys := make([]string, 0)
			for iter.Next() {
				keys = append(keys, iter.Key())
			}
			require.NoError(t, iter.Err())
			assert.Equal(t, c.want, keys)
		})
	}
}

func TestMemoryHistory(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Put(ctx, "k", []byte("v1")))
	require.NoError(t, store.Put(ctx, "k", []byte("v2")))
	require.NoError(t, store.Put(ctx, "k", []byte("v3")))

	iter, err := store.History(ctx, "k")
	require.NoError(t, err)
	defer func() { _ = iter.Close() }()

	var values []string
	txIDs := map[string]struct{}{}
	for iter.Next() {
		values = append(values, string(iter.Value()))
		txIDs[iter.TxID()] = struct{}{}
		assert.False(t, iter.Timestamp().IsZero())
	}
	require.NoError(t, iter.Err())

	assert.Equal(t, []string{"v1", "v2", "v3"}, values, "oldest to newest")
	assert.Len(t, txIDs, 3, "every version carries a unique transaction id")
}

func TestMemoryHistoryUnknownKey(t *testing.T) {
	store := NewMemory()

	iter, err := store.History(context.Background(), "missing")
	require.NoError(t, err)
	defer func() { _ = iter.Close() }()

	assert.False(t, iter.Next())
}

func TestMemoryQuery(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Put(ctx, "d1", []byte(`{"docType":"wasteDisposal","wasteType":"recyclable"}`)))
	require.NoError(t, store.Put(ctx, "d2", []byte(`{"docType":"wasteDisposal","wasteType":"kitchen"}`)))
	require.NoError(t, store.Put(ctx, "u1", []byte(`{"docType":"user"}`)))
	require.NoError(t, store.Put(ctx, "junk", []byte("not json")))

	iter, err := store.Query(ctx, map[string]string{
		"docType":   "wasteDisposal",
		"wasteType": "recyclable",
	})
	require.NoError(t, err)
	defer func() { _ = iter.Close() }()

	var keys []string
	for iter.Next() {
		keys = append(keys, iter.Key())
	}
	require.NoError(t, iter.Err())
	assert.Equal(t, []string{"d1"}, keys)
}

func TestMemoryClosed(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Close())

	_, getErr := store.Get(ctx, "k")
	assert.ErrorIs(t, getErr, ErrClosed)
	assert.ErrorIs(t, store.Put(ctx, "k", nil), ErrClosed)
}
