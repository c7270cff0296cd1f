package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecopoints/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup           = "/api"
	DisposalsRoute       = "/disposals"
	DisposalRoute        = "/disposals/:id"
	DisposalHistoryRoute = "/disposals/:id/history"
	DisposalStatusRoute  = "/disposals/:id/status"
	UserRoute            = "/users/:userId"
	TransfersRoute       = "/transfers"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	DisposalService DisposalServicer
	PointsService   PointsServicer
	QueryService    QueryServicer
	AuditService    AuditServicer
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	disposalsHandler := NewDisposalsHandler(args.DisposalService, args.QueryService, args.AuditService)
	usersHandler := NewUsersHandler(args.PointsService)

	api := r.Group(RouteGroup)

	api.POST(DisposalsRoute, disposalsHandler.Create)
	api.GET(DisposalsRoute, disposalsHandler.Index)
	api.GET(DisposalRoute, disposalsHandler.Show)
	api.GET(DisposalHistoryRoute, disposalsHandler.History)
	api.PATCH(DisposalStatusRoute, disposalsHandler.UpdateStatus)

	api.GET(UserRoute, usersHandler.Show)
	api.POST(TransfersRoute, usersHandler.Transfer)
	return r
}
