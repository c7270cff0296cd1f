package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/logger"
	"github.com/fsdevblog/ecopoints/internal/transport/api/mocks"
	"github.com/fsdevblog/ecopoints/internal/transport/api/testutils"
)

type UsersHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockPointsService *mocks.MockPointsServicer
}

func TestUsersHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsersHandlerTestSuite))
}

func (s *UsersHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockPointsService = mocks.NewMockPointsServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:        logger.New(io.Discard),
		PointsService: s.mockPointsService,
	})
}

func (s *UsersHandlerTestSuite) jsonRequest(method, url string, payload any) *http.Response {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewReader(raw)
	}

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   body,
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		s.Require().NoError(res.Body.Close())
	})
	return res
}

func (s *UsersHandlerTestSuite) TestShow() {
	s.mockPointsService.EXPECT().
		GetUser(gomock.Any(), "u1").
		Return(&domain.UserAccount{
			DocType:     domain.DocTypeUser,
			UserID:      "u1",
			TotalPoints: decimal.NewFromInt(26),
		}, nil)

	res := s.jsonRequest(http.MethodGet, RouteGroup+"/users/u1", nil)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	// баланс сериализуется строкой
	var payload map[string]json.RawMessage
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
	s.Equal(`"26"`, string(payload["totalPoints"]))
}

func (s *UsersHandlerTestSuite) TestShowNotFound() {
	s.mockPointsService.EXPECT().
		GetUser(gomock.Any(), "nobody").
		Return(nil, domain.ErrRecordNotFound)

	res := s.jsonRequest(http.MethodGet, RouteGroup+"/users/nobody", nil)
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *UsersHandlerTestSuite) TestTransfer() {
	transaction := &domain.PointsTransaction{
		DocType:       domain.DocTypeTransaction,
		TransactionID: "tx-1",
		FromUserID:    "u1",
		ToUserID:      "u2",
		Points:        10,
		Remarks:       "gift",
		Timestamp:     time.Now().UTC(),
	}

	s.mockPointsService.EXPECT().
		Transfer(gomock.Any(), "u1", "u2", int64(10), "gift").
		Return(transaction, nil)

	res := s.jsonRequest(http.MethodPost, RouteGroup+TransfersRoute, gin.H{
		"fromUserId": "u1",
		"toUserId":   "u2",
		"points":     10,
		"remarks":    "gift",
	})
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var got domain.PointsTransaction
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
	s.Equal("tx-1", got.TransactionID)
	s.Equal(int64(10), got.Points)
}

func (s *UsersHandlerTestSuite) TestTransferErrors() {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid amount", serviceErr: domain.ErrInvalidAmount, wantStatus: http.StatusBadRequest},
		{name: "not enough balance", serviceErr: domain.ErrNotEnoughBalance, wantStatus: http.StatusPaymentRequired},
		{name: "unknown source", serviceErr: domain.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", serviceErr: domain.ErrUnknown, wantStatus: http.StatusInternalServerError},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			s.mockPointsService.EXPECT().
				Transfer(gomock.Any(), "u1", "u2", gomock.Any(), gomock.Any()).
				Return(nil, c.serviceErr)

			res := s.jsonRequest(http.MethodPost, RouteGroup+TransfersRoute, gin.H{
				"fromUserId": "u1",
				"toUserId":   "u2",
				"points":     10,
			})
			s.Equal(c.wantStatus, res.StatusCode)
		})
	}
}

func (s *UsersHandlerTestSuite) TestTransferBadRequest() {
	// невалидный payload до сервиса дойти не должен
	s.mockPointsService.EXPECT().
		Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	res := s.jsonRequest(http.MethodPost, RouteGroup+TransfersRoute, gin.H{
		"fromUserId": "u1",
	})
	s.Equal(http.StatusBadRequest, res.StatusCode)
}
