package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/repository/repoargs"
)

// Интерфейсы сервисного слоя, используются хендлерами и моками.

type DisposalServicer interface {
	Record(ctx context.Context, args repoargs.DisposalCreate) (*domain.DisposalRecord, error)
	Get(ctx context.Context, id string) (*domain.DisposalRecord, error)
	UpdateStatus(ctx context.Context, args repoargs.StatusUpdate) (*domain.DisposalRecord, error)
}

type PointsServicer interface {
	GetUser(ctx context.Context, userID string) (*domain.UserAccount, error)
	Transfer(
		ctx context.Context,
		fromUserID, toUserID string,
		points int64,
		remarks string,
	) (*domain.PointsTransaction, error)
}

type QueryServicer interface {
	ByWasteType(ctx context.Context, wasteType domain.WasteType) ([]domain.DisposalRecord, error)
	ByUser(ctx context.Context, userID string) ([]domain.DisposalRecord, error)
}

type AuditServicer interface {
	History(ctx context.Context, id string) ([]domain.HistoryEntry, error)
}
