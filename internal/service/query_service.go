package service

import (
	"context"

	"github.com/fsdevblog/ecopoints/internal/domain"
)

// QueryService отвечает на выборки по вторичным признакам. Стратегия (нативный
// селектор или полный скан) выбрана при сборке приложения, вызывающий код
// различий не видит.
type QueryService struct {
	querier DisposalQuerier
}

func NewQueryService(querier DisposalQuerier) *QueryService {
	return &QueryService{querier: querier}
}

func (q *QueryService) ByWasteType(ctx context.Context, wasteType domain.WasteType) ([]domain.DisposalRecord, error) {
	records, err := q.querier.ByWasteType(ctx, wasteType)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return records, nil
}

func (q *QueryService) ByUser(ctx context.Context, userID string) ([]domain.DisposalRecord, error) {
	records, err := q.querier.ByUser(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return records, nil
}
