package service

import (
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/logger"
	"github.com/fsdevblog/ecopoints/internal/repository/repoargs"
	"github.com/fsdevblog/ecopoints/pkg/kvstore"
)

type DisposalServiceTestSuite struct {
	suite.Suite
	store    *kvstore.Memory
	services *AppServices
}

func TestDisposalServiceSuite(t *testing.T) {
	suite.Run(t, new(DisposalServiceTestSuite))
}

func (s *DisposalServiceTestSuite) SetupTest() {
	s.store = kvstore.NewMemory()
	s.services = Factory(FactoryArgs{
		Store:  s.store,
		Logger: logger.New(io.Discard),
	})
}

func (s *DisposalServiceTestSuite) record(id, userID string, wasteType domain.WasteType, weight string) *domain.DisposalRecord {
	record, err := s.services.DisposalService.Record(s.T().Context(), repoargs.DisposalCreate{
		ID:        id,
		UserID:    userID,
		WasteType: wasteType,
		Weight:    decimal.RequireFromString(weight),
		Location:  "station 4",
		Timestamp: "2024-06-01T10:00:00Z",
	})
	s.Require().NoError(err)
	return record
}

func (s *DisposalServiceTestSuite) TestRecord() {
	record := s.record("d1", "u1", domain.WasteRecyclable, "10")

	s.Equal(domain.DocTypeDisposal, record.DocType)
	s.Equal(domain.StatusRecorded, record.Status)
	s.True(decimal.NewFromInt(20).Equal(record.Points))
	s.Empty(record.StatusHistory)

	// баллы зачислены владельцу
	account, err := s.services.PointsService.GetUser(s.T().Context(), "u1")
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(20).Equal(account.TotalPoints))
}

// TestRecordAccrualFlow сквозной сценарий начисления и перевода.
func (s *DisposalServiceTestSuite) TestRecordAccrualFlow() {
	ctx := s.T().Context()

	s.record("d1", "u1", domain.WasteRecyclable, "10") // 20 баллов
	s.record("d2", "u1", domain.WasteHazardous, "2")   // еще 6

	account, err := s.services.PointsService.GetUser(ctx, "u1")
	s.Require().NoError(err)
	s.Equal("26", account.TotalPoints.String())

	_, transferErr := s.services.PointsService.Transfer(ctx, "u1", "u2", 10, "gift")
	s.Require().NoError(transferErr)

	fromAccount, fromErr := s.services.PointsService.GetUser(ctx, "u1")
	s.Require().NoError(fromErr)
	toAccount, toErr := s.services.PointsService.GetUser(ctx, "u2")
	s.Require().NoError(toErr)

	s.Equal("16", fromAccount.TotalPoints.String())
	s.Equal("10", toAccount.TotalPoints.String())
}

func (s *DisposalServiceTestSuite) TestRecordDuplicateID() {
	s.record("d1", "u1", domain.WasteRecyclable, "10")

	_, err := s.services.DisposalService.Record(s.T().Context(), repoargs.DisposalCreate{
		ID:        "d1",
		UserID:    "u2",
		WasteType: domain.WasteKitchen,
		Weight:    decimal.NewFromInt(1),
	})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)

	// запись не перезаписана, чужих начислений нет
	record, getErr := s.services.DisposalService.Get(s.T().Context(), "d1")
	s.Require().NoError(getErr)
	s.Equal("u1", record.UserID)

	_, userErr := s.services.PointsService.GetUser(s.T().Context(), "u2")
	s.Require().ErrorIs(userErr, domain.ErrRecordNotFound)
}

func (s *DisposalServiceTestSuite) TestGetNotFound() {
	_, err := s.services.DisposalService.Get(s.T().Context(), "missing")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *DisposalServiceTestSuite) TestUpdateStatusChain() {
	ctx := s.T().Context()
	s.record("d1", "u1", domain.WasteRecyclable, "10")

	statuses := []domain.DisposalStatus{
		domain.StatusCollected,
		domain.StatusProcessed,
		domain.StatusCompleted,
	}

	for i, status := range statuses {
		record, err := s.services.DisposalService.UpdateStatus(ctx, repoargs.StatusUpdate{
			ID:        "d1",
			NewStatus: status,
			Operator:  "op-7",
			Remarks:   "ok",
		})
		s.Require().NoError(err)
		s.Equal(status, record.Status)
		s.Require().Len(record.StatusHistory, i+1)
	}

	// история переходов сохраняет порядок и полна
	record, err := s.services.DisposalService.Get(ctx, "d1")
	s.Require().NoError(err)
	s.Require().Len(record.StatusHistory, 3)
	s.Equal(domain.StatusRecorded, record.StatusHistory[0].From)
	s.Equal(domain.StatusCollected, record.StatusHistory[0].To)
	s.Equal(domain.StatusCompleted, record.StatusHistory[2].To)
	s.Equal("op-7", record.StatusHistory[0].Operator)

	// баллы статусами не трогаются
	s.True(decimal.NewFromInt(20).Equal(record.Points))
}

func (s *DisposalServiceTestSuite) TestUpdateStatusIllegalTransition() {
	s.record("d1", "u1", domain.WasteRecyclable, "10")

	_, err := s.services.DisposalService.UpdateStatus(s.T().Context(), repoargs.StatusUpdate{
		ID:        "d1",
		NewStatus: domain.StatusCompleted,
		Operator:  "op-7",
	})

	var transitionErr *domain.InvalidTransitionError
	s.Require().ErrorAs(err, &transitionErr)
	s.Equal(domain.StatusRecorded, transitionErr.From)
	s.Equal(domain.StatusCompleted, transitionErr.To)

	// статус и история не изменились
	record, getErr := s.services.DisposalService.Get(s.T().Context(), "d1")
	s.Require().NoError(getErr)
	s.Equal(domain.StatusRecorded, record.Status)
	s.Empty(record.StatusHistory)
}

func (s *DisposalServiceTestSuite) TestUpdateStatusNotFound() {
	_, err := s.services.DisposalService.UpdateStatus(s.T().Context(), repoargs.StatusUpdate{
		ID:        "missing",
		NewStatus: domain.StatusCollected,
		Operator:  "op-7",
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *DisposalServiceTestSuite) TestAuditHistory() {
	ctx := s.T().Context()
	s.record("d1", "u1", domain.WasteRecyclable, "10")

	_, updErr := s.services.DisposalService.UpdateStatus(ctx, repoargs.StatusUpdate{
		ID:        "d1",
		NewStatus: domain.StatusCollected,
		Operator:  "op-7",
	})
	s.Require().NoError(updErr)

	entries, err := s.services.AuditService.History(ctx, "d1")
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	s.Require().NotNil(entries[0].Record)
	s.Equal(domain.StatusRecorded, entries[0].Record.Status)
	s.Require().NotNil(entries[1].Record)
	s.Equal(domain.StatusCollected, entries[1].Record.Status)
}

func (s *DisposalServiceTestSuite) TestAuditHistoryNotFound() {
	_, err := s.services.AuditService.History(s.T().Context(), "missing")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *DisposalServiceTestSuite) TestQueryService() {
	ctx := s.T().Context()

	s.record("d1", "u1", domain.WasteRecyclable, "10")
	s.record("d2", "u1", domain.WasteHazardous, "2")
	s.record("d3", "u2", domain.WasteRecyclable, "1")

	byType, typeErr := s.services.QueryService.ByWasteType(ctx, domain.WasteRecyclable)
	s.Require().NoError(typeErr)
	s.Len(byType, 2)

	byUser, userErr := s.services.QueryService.ByUser(ctx, "u1")
	s.Require().NoError(userErr)
	s.Len(byUser, 2)

	empty, emptyErr := s.services.QueryService.ByUser(ctx, "nobody")
	s.Require().NoError(emptyErr)
	s.Empty(empty)
}
