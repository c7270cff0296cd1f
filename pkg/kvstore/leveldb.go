package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_iterator "github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// key layout inside the leveldb database:
//
//	v\x00<key>            current value
//	h\x00<key>\x00<seq>   one history version, seq keeps versions ordered
//
// the NUL separator keeps key prefixes unambiguous; logical keys must not
// contain NUL bytes.
const (
	livePrefix    = "v\x00"
	historyPrefix = "h\x00"
	keySeparator  = "\x00"
)

// LevelDB is a Store persisted with goleveldb. It does not implement RichQuerier,
// so disposals against it are queried via the scan-and-filter fallback.
type LevelDB struct {
	db  *leveldb.DB
	seq atomic.Int64
}

func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "[kvstore] opening leveldb at %s", path)
	}
	store := &LevelDB{db: db}
	// seed the version sequence from the clock so ordering survives restarts
	store.seq.Store(time.Now().UnixNano())
	return store, nil
}

type historyEnvelope struct {
	TxID      string    `json:"txId"`
	Timestamp time.Time `json:"timestamp"`
	Value     []byte    `json:"value"`
}

func (l *LevelDB) Get(_ context.Context, key string) ([]byte, error) {
	value, err := l.db.Get([]byte(livePrefix+key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "[kvstore] get %s", key)
	}
	return value, nil
}

func (l *LevelDB) Put(_ context.Context, key string, value []byte) error {
	envelope, marshalErr := json.Marshal(historyEnvelope{
		TxID:      l.TxID(),
		Timestamp: time.Now().UTC(),
		Value:     value,
	})
	if marshalErr != nil {
		return errors.Wrapf(marshalErr, "[kvstore] put %s", key)
	}

	seqKey := fmt.Sprintf("%s%s%s%020d", historyPrefix, key, keySeparator, l.seq.Add(1))

	batch := new(leveldb.Batch)
	batch.Put([]byte(livePrefix+key), value)
	batch.Put([]byte(seqKey), envelope)

	if err := l.db.Write(batch, nil); err != nil {
		return errors.Wrapf(err, "[kvstore] put %s", key)
	}
	return nil
}

func (l *LevelDB) RangeScan(_ context.Context, startKey, endKey string) (Iterator, error) {
	bounds := ldb_util.BytesPrefix([]byte(livePrefix))
	if startKey != "" {
		bounds.Start = []byte(livePrefix + startKey)
	}
	if endKey != "" {
		bounds.Limit = []byte(livePrefix + endKey)
	}
	return &levelIterator{it: l.db.NewIterator(bounds, nil)}, nil
}

func (l *LevelDB) History(_ context.Context, key string) (HistoryIterator, error) {
	bounds := ldb_util.BytesPrefix([]byte(historyPrefix + key + keySeparator))
	return &levelHistoryIterator{it: l.db.NewIterator(bounds, nil)}, nil
}

func (l *LevelDB) TxID() string {
	return uuid.NewString()
}

func (l *LevelDB) Close() error {
	if err := l.db.Close(); err != nil {
		return errors.Wrap(err, "[kvstore] closing leveldb")
	}
	return nil
}

// levelIterator strips the live prefix and copies key/value slices, which are
// only valid until the underlying iterator advances.
type levelIterator struct {
	it    ldb_iterator.Iterator
	key   string
	value []byte
}

func (it *levelIterator) Next() bool {
	if !it.it.Next() {
		return false
	}
	it.key = string(it.it.Key()[len(livePrefix):])
	it.value = copyBytes(it.it.Value())
	return true
}

func (it *levelIterator) Key() string { return it.key }

func (it *levelIterator) Value() []byte { return it.value }

func (it *levelIterator) Err() error {
	return errors.Wrap(it.it.Error(), "[kvstore] range scan")
}

func (it *levelIterator) Close() error {
	it.it.Release()
	return errors.Wrap(it.it.Error(), "[kvstore] range scan close")
}

type levelHistoryIterator struct {
	it      ldb_iterator.Iterator
	current historyEnvelope
	err     error
}

func (it *levelHistoryIterator) Next() bool {
	if it.err != nil || !it.it.Next() {
		return false
	}
	it.current = historyEnvelope{}
	if decodeErr := json.Unmarshal(it.it.Value(), &it.current); decodeErr != nil {
		it.err = errors.Wrap(decodeErr, "[kvstore] decoding history envelope")
		return false
	}
	return true
}

func (it *levelHistoryIterator) TxID() string { return it.current.TxID }

func (it *levelHistoryIterator) Timestamp() time.Time { return it.current.Timestamp }

func (it *levelHistoryIterator) Value() []byte { return it.current.Value }

func (it *levelHistoryIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return errors.Wrap(it.it.Error(), "[kvstore] history scan")
}

func (it *levelHistoryIterator) Close() error {
	it.it.Release()
	return errors.Wrap(it.it.Error(), "[kvstore] history close")
}
