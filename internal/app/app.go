package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecopoints/internal/config"
	"github.com/fsdevblog/ecopoints/internal/service"
	"github.com/fsdevblog/ecopoints/internal/transport/api"
	"github.com/fsdevblog/ecopoints/pkg/kvstore"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)

	store, storeErr := a.openStore()
	if storeErr != nil {
		return fmt.Errorf("app run: %s", storeErr.Error())
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("closing store")
		}
	}()

	rates, ratesErr := a.Config.Rates()
	if ratesErr != nil {
		return fmt.Errorf("app run: %s", ratesErr.Error())
	}

	services := service.Factory(service.FactoryArgs{
		Store:  store,
		Rates:  rates,
		Logger: a.Logger,
	})

	router := api.New(api.RouterArgs{
		Logger:          a.Logger,
		DisposalService: services.DisposalService,
		PointsService:   services.PointsService,
		QueryService:    services.QueryService,
		AuditService:    services.AuditService,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func (a *App) openStore() (kvstore.Store, error) {
	if a.Config.DatabasePath == "" {
		a.Logger.Info("no database path configured, using in-memory store")
		return kvstore.NewMemory(), nil
	}
	return kvstore.OpenLevelDB(a.Config.DatabasePath)
}
