package service

import (
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/repository/kvrepo"
	"github.com/fsdevblog/ecopoints/pkg/kvstore"
)

type AppServices struct {
	DisposalService *DisposalService
	PointsService   *PointsService
	QueryService    *QueryService
	AuditService    *AuditService
}

type FactoryArgs struct {
	Store  kvstore.Store
	Rates  domain.RateTable
	Logger logrus.FieldLogger
}

func Factory(args FactoryArgs) *AppServices {
	rates := args.Rates
	if rates == nil {
		rates = domain.DefaultRateTable()
	}

	disposalRepo := kvrepo.NewDisposalRepository(args.Store)
	userRepo := kvrepo.NewUserRepository(args.Store)
	transRepo := kvrepo.NewTransactionRepository(args.Store)
	querier := kvrepo.NewDisposalQuerier(args.Store, args.Logger)

	pointsService := NewPointsService(userRepo, transRepo, rates, args.Logger)

	return &AppServices{
		DisposalService: NewDisposalService(disposalRepo, pointsService, args.Logger),
		PointsService:   pointsService,
		QueryService:    NewQueryService(querier),
		AuditService:    NewAuditService(disposalRepo),
	}
}
