package service

import (
	"context"

	"github.com/fsdevblog/ecopoints/internal/domain"
)

// AuditService выдает нормализованную историю изменений записи об утилизации.
type AuditService struct {
	disposalRepo DisposalRepository
}

func NewAuditService(disposalRepo DisposalRepository) *AuditService {
	return &AuditService{disposalRepo: disposalRepo}
}

// History возвращает версии записи от старейшей к новейшей. Версии, которые не
// декодируются как запись об утилизации, приходят с сырым payload'ом.
func (a *AuditService) History(ctx context.Context, id string) ([]domain.HistoryEntry, error) {
	entries, err := a.disposalRepo.History(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}
