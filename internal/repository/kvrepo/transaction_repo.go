package kvrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/repository/repoargs"
	"github.com/fsdevblog/ecopoints/pkg/kvstore"
)

type TransactionRepository struct {
	store kvstore.Store
}

func NewTransactionRepository(store kvstore.Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// Create пишет неизменяемую аудит-запись перевода. Идентификатор выдает
// хранилище (его транзакционный примитив), он же становится суффиксом ключа.
func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransferCreate,
) (*domain.PointsTransaction, error) {
	transaction := &domain.PointsTransaction{
		DocType:       domain.DocTypeTransaction,
		TransactionID: r.store.TxID(),
		FromUserID:    args.FromUserID,
		ToUserID:      args.ToUserID,
		Points:        args.Points,
		Remarks:       args.Remarks,
		Timestamp:     time.Now().UTC(),
	}

	raw, marshalErr := json.Marshal(transaction)
	if marshalErr != nil {
		return nil, convertErr(marshalErr, "encoding transaction %s", transaction.TransactionID)
	}

	key := TransactionKey(transaction.TransactionID)
	if err := r.store.Put(ctx, key, raw); err != nil {
		return nil, convertErr(err, "saving transaction %s", transaction.TransactionID)
	}
	return transaction, nil
}
