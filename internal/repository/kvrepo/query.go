package kvrepo

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/pkg/kvstore"
)

// selector field names, must match the json tags of domain.DisposalRecord.
const (
	fieldDocType   = "docType"
	fieldWasteType = "wasteType"
	fieldUserID    = "userId"
)

// DisposalQuerier отвечает на запросы по вторичным признакам записей об
// утилизации. Обе стратегии обязаны возвращать одинаковые наборы записей.
type DisposalQuerier interface {
	ByWasteType(ctx context.Context, wasteType domain.WasteType) ([]domain.DisposalRecord, error)
	ByUser(ctx context.Context, userID string) ([]domain.DisposalRecord, error)
}

// NewDisposalQuerier выбирает стратегию по возможностям хранилища: нативный
// селектор-запрос, если хранилище его умеет, иначе полный скан с фильтрацией.
func NewDisposalQuerier(store kvstore.Store, log logrus.FieldLogger) DisposalQuerier {
	if rq, ok := store.(kvstore.RichQuerier); ok {
		return &RichQuery{rq: rq, log: log}
	}
	return &ScanQuery{store: store, log: log}
}

// RichQuery submits a structured selector to the store's native query facility.
type RichQuery struct {
	rq  kvstore.RichQuerier
	log logrus.FieldLogger
}

func (q *RichQuery) ByWasteType(ctx context.Context, wasteType domain.WasteType) ([]domain.DisposalRecord, error) {
	return q.byField(ctx, fieldWasteType, string(wasteType))
}

func (q *RichQuery) ByUser(ctx context.Context, userID string) ([]domain.DisposalRecord, error) {
	return q.byField(ctx, fieldUserID, userID)
}

func (q *RichQuery) byField(ctx context.Context, field, value string) ([]domain.DisposalRecord, error) {
	iter, err := q.rq.Query(ctx, map[string]string{
		fieldDocType: domain.DocTypeDisposal,
		field:        value,
	})
	if err != nil {
		return nil, convertErr(err, "querying disposals by %s", field)
	}
	defer func() { _ = iter.Close() }()

	records := make([]domain.DisposalRecord, 0)
	for iter.Next() {
		var record domain.DisposalRecord
		if jsonErr := json.Unmarshal(iter.Value(), &record); jsonErr != nil {
			// битую запись пропускаем, она не должна блокировать выборку целиком
			q.log.WithError(jsonErr).Warnf("skipping undecodable record at key %s", iter.Key())
			continue
		}
		records = append(records, record)
	}
	if iterErr := iter.Err(); iterErr != nil {
		return nil, convertErr(iterErr, "querying disposals by %s", field)
	}
	return records, nil
}

// ScanQuery is the correctness fallback for stores without a native selector
// facility: it walks the entire keyspace and filters decoded documents in memory.
// Cost is O(total keys in the store), not O(matches).
type ScanQuery struct {
	store kvstore.Store
	log   logrus.FieldLogger
}

func (q *ScanQuery) ByWasteType(ctx context.Context, wasteType domain.WasteType) ([]domain.DisposalRecord, error) {
	return q.scan(ctx, func(r *domain.DisposalRecord) bool {
		return r.WasteType == wasteType
	})
}

func (q *ScanQuery) ByUser(ctx context.Context, userID string) ([]domain.DisposalRecord, error) {
	return q.scan(ctx, func(r *domain.DisposalRecord) bool {
		return r.UserID == userID
	})
}

func (q *ScanQuery) scan(
	ctx context.Context,
	match func(*domain.DisposalRecord) bool,
) ([]domain.DisposalRecord, error) {
	iter, err := q.store.RangeScan(ctx, "", "")
	if err != nil {
		return nil, convertErr(err, "scanning disposals")
	}
	defer func() { _ = iter.Close() }()

	records := make([]domain.DisposalRecord, 0)
	for iter.Next() {
		var record domain.DisposalRecord
		if jsonErr := json.Unmarshal(iter.Value(), &record); jsonErr != nil {
			q.log.WithError(jsonErr).Debugf("skipping undecodable value at key %s", iter.Key())
			continue
		}
		if record.DocType != domain.DocTypeDisposal {
			continue
		}
		if match(&record) {
			records = append(records, record)
		}
	}
	if iterErr := iter.Err(); iterErr != nil {
		return nil, convertErr(iterErr, "scanning disposals")
	}
	return records, nil
}
