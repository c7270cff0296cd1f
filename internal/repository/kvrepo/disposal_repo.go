package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/pkg/kvstore"
)

type DisposalRepository struct {
	store kvstore.Store
}

func NewDisposalRepository(store kvstore.Store) *DisposalRepository {
	return &DisposalRepository{store: store}
}

// Create сохраняет новую запись об утилизации. Если ключ уже занят, возвращает
// ошибку domain.ErrDuplicateKey (исходный контракт молча перезаписывал запись,
// здесь поведение ужесточено осознанно).
func (r *DisposalRepository) Create(ctx context.Context, record *domain.DisposalRecord) error {
	_, getErr := r.store.Get(ctx, record.ID)
	if getErr == nil {
		return fmt.Errorf("[repository/creating disposal %s] %w", record.ID, domain.ErrDuplicateKey)
	}
	if !errors.Is(getErr, kvstore.ErrKeyNotFound) {
		return convertErr(getErr, "creating disposal %s", record.ID)
	}

	return r.put(ctx, record)
}

func (r *DisposalRepository) Find(ctx context.Context, id string) (*domain.DisposalRecord, error) {
	raw, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, convertErr(err, "finding disposal %s", id)
	}

	var record domain.DisposalRecord
	if jsonErr := json.Unmarshal(raw, &record); jsonErr != nil {
		return nil, convertErr(jsonErr, "decoding disposal %s", id)
	}
	return &record, nil
}

// Save перезаписывает существующую запись (смена статуса, история статусов).
func (r *DisposalRepository) Save(ctx context.Context, record *domain.DisposalRecord) error {
	return r.put(ctx, record)
}

// History воспроизводит историю записей ключа из примитива хранилища. Каждая
// версия декодируется по принципу best-effort: при неудаче запись попадает в
// результат с сырым значением, чтение истории при этом не прерывается.
func (r *DisposalRepository) History(ctx context.Context, id string) ([]domain.HistoryEntry, error) {
	iter, err := r.store.History(ctx, id)
	if err != nil {
		return nil, convertErr(err, "reading history of %s", id)
	}
	defer func() { _ = iter.Close() }()

	var entries []domain.HistoryEntry
	for iter.Next() {
		entry := domain.HistoryEntry{
			TxID:      iter.TxID(),
			Timestamp: iter.Timestamp(),
		}

		var record domain.DisposalRecord
		if jsonErr := json.Unmarshal(iter.Value(), &record); jsonErr == nil {
			entry.Record = &record
		} else {
			entry.Raw = append(json.RawMessage(nil), iter.Value()...)
		}
		entries = append(entries, entry)
	}
	if iterErr := iter.Err(); iterErr != nil {
		return nil, convertErr(iterErr, "reading history of %s", id)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("[repository/reading history of %s] %w", id, domain.ErrRecordNotFound)
	}
	return entries, nil
}

func (r *DisposalRepository) put(ctx context.Context, record *domain.DisposalRecord) error {
	raw, marshalErr := json.Marshal(record)
	if marshalErr != nil {
		return convertErr(marshalErr, "encoding disposal %s", record.ID)
	}
	return convertErr(r.store.Put(ctx, record.ID, raw), "saving disposal %s", record.ID)
}
