package service

import (
	"context"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type DisposalRepository interface {
	Create(ctx context.Context, record *domain.DisposalRecord) error
	Find(ctx context.Context, id string) (*domain.DisposalRecord, error)
	Save(ctx context.Context, record *domain.DisposalRecord) error
	History(ctx context.Context, id string) ([]domain.HistoryEntry, error)
}

type UserRepository interface {
	Find(ctx context.Context, userID string) (*domain.UserAccount, error)
	Save(ctx context.Context, account *domain.UserAccount) error
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransferCreate) (*domain.PointsTransaction, error)
}

type DisposalQuerier interface {
	ByWasteType(ctx context.Context, wasteType domain.WasteType) ([]domain.DisposalRecord, error)
	ByUser(ctx context.Context, userID string) ([]domain.DisposalRecord, error)
}
