// Package kvstore defines the keyed record store contract the loyalty core runs
// against: lookup by key, range scan over the flat keyspace and full per-key write
// history. Durability and cross-node agreement are the store's problem, not ours;
// the only guarantee consumers rely on is that all writes issued inside one core
// operation commit together.
package kvstore

import (
	"context"
	"errors"
	"time"
)

var (
	ErrKeyNotFound = errors.New("[kvstore] key not found")
	ErrClosed      = errors.New("[kvstore] store is closed")
)

type Store interface {
	// Get returns the current value under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, recording a new history version.
	Put(ctx context.Context, key string, value []byte) error

	// RangeScan iterates the half-open key interval [startKey, endKey) in
	// lexical order. Empty bounds mean unbounded on that side.
	RangeScan(ctx context.Context, startKey, endKey string) (Iterator, error)

	// History replays every committed version of key, oldest first. An
	// unknown key yields an empty iterator, not an error.
	History(ctx context.Context, key string) (HistoryIterator, error)

	// TxID issues the unique transaction identifier for the current write.
	TxID() string

	Close() error
}

type Iterator interface {
	Next() bool
	Key() string
	Value() []byte
	Err() error
	Close() error
}

type HistoryIterator interface {
	Next() bool
	TxID() string
	Timestamp() time.Time
	Value() []byte
	Err() error
	Close() error
}

// RichQuerier is an optional Store capability: native matching of JSON documents
// against a field selector, the moral equivalent of a secondary index. Stores
// without it are served by the scan-and-filter fallback in the repository layer.
type RichQuerier interface {
	Query(ctx context.Context, selector map[string]string) (Iterator, error)
}
