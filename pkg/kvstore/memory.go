package kvstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memVersion struct {
	txID      string
	timestamp time.Time
	value     []byte
}

// Memory is an in-process Store for tests and single-node deployments. Every Put
// appends a history version, so audit replay works the same as against a real
// ledger backend. Memory also implements RichQuerier by matching stored JSON
// documents against a selector.
type Memory struct {
	mu       sync.RWMutex
	values   map[string][]byte
	versions map[string][]memVersion
	closed   bool
}

func NewMemory() *Memory {
	return &Memory{
		values:   make(map[string][]byte),
		versions: make(map[string][]memVersion),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}
	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return copyBytes(value), nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	stored := copyBytes(value)
	m.values[key] = stored
	m.versions[key] = append(m.versions[key], memVersion{
		txID:      m.TxID(),
		timestamp: time.Now().UTC(),
		value:     stored,
	})
	return nil
}

// RangeScan snapshots the matching keys under the read lock; the returned
// iterator is detached from later writes.
func (m *Memory) RangeScan(_ context.Context, startKey, endKey string) (Iterator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		if startKey != "" && key < startKey {
			continue
		}
		if endKey != "" && key >= endKey {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]kvPair, len(keys))
	for i, key := range keys {
		pairs[i] = kvPair{key: key, value: copyBytes(m.values[key])}
	}
	return &sliceIterator{pairs: pairs, idx: -1}, nil
}

func (m *Memory) History(_ context.Context, key string) (HistoryIterator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}
	versions := make([]memVersion, len(m.versions[key]))
	copy(versions, m.versions[key])
	return &memHistoryIterator{versions: versions, idx: -1}, nil
}

// Query matches stored JSON documents against the selector: a document matches
// when every selector field decodes to an equal string value.
func (m *Memory) Query(ctx context.Context, selector map[string]string) (Iterator, error) {
	scan, err := m.RangeScan(ctx, "", "")
	if err != nil {
		return nil, err
	}
	defer func() { _ = scan.Close() }()

	var pairs []kvPair
	for scan.Next() {
		var doc map[string]any
		if jsonErr := json.Unmarshal(scan.Value(), &doc); jsonErr != nil {
			continue
		}
		if matchSelector(doc, selector) {
			pairs = append(pairs, kvPair{key: scan.Key(), value: copyBytes(scan.Value())})
		}
	}
	if scanErr := scan.Err(); scanErr != nil {
		return nil, scanErr
	}
	return &sliceIterator{pairs: pairs, idx: -1}, nil
}

func (m *Memory) TxID() string {
	return uuid.NewString()
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

func matchSelector(doc map[string]any, selector map[string]string) bool {
	for field, want := range selector {
		got, ok := doc[field].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

type kvPair struct {
	key   string
	value []byte
}

type sliceIterator struct {
	pairs []kvPair
	idx   int
}

func (it *sliceIterator) Next() bool {
	if it.idx+1 >= len(it.pairs) {
		return false
	}
	it.idx++
	return true
}

func (it *sliceIterator) Key() string {
	return it.pairs[it.idx].key
}

func (it *sliceIterator) Value() []byte {
	return it.pairs[it.idx].value
}

func (it *sliceIterator) Err() error { return nil }

func (it *sliceIterator) Close() error { return nil }

type memHistoryIterator struct {
	versions []memVersion
	idx      int
}

func (it *memHistoryIterator) Next() bool {
	if it.idx+1 >= len(it.versions) {
		return false
	}
	it.idx++
	return true
}

func (it *memHistoryIterator) TxID() string { return it.versions[it.idx].txID }

func (it *memHistoryIterator) Timestamp() time.Time { return it.versions[it.idx].timestamp }

func (it *memHistoryIterator) Value() []byte { return it.versions[it.idx].value }

func (it *memHistoryIterator) Err() error { return nil }

func (it *memHistoryIterator) Close() error { return nil }
