package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/repository/repoargs"
)

type DisposalService struct {
	disposalRepo DisposalRepository
	points       *PointsService
	log          logrus.FieldLogger
}

func NewDisposalService(
	disposalRepo DisposalRepository,
	points *PointsService,
	log logrus.FieldLogger,
) *DisposalService {
	return &DisposalService{
		disposalRepo: disposalRepo,
		points:       points,
		log:          log,
	}
}

// Record создает запись об утилизации и начисляет владельцу баллы по таблице
// ставок. Баллы вычисляются единожды и после создания не пересчитываются.
// Занятый id возвращает ошибку domain.ErrDuplicateKey.
func (d *DisposalService) Record(ctx context.Context, args repoargs.DisposalCreate) (*domain.DisposalRecord, error) {
	record := &domain.DisposalRecord{
		DocType:   domain.DocTypeDisposal,
		ID:        args.ID,
		UserID:    args.UserID,
		WasteType: args.WasteType,
		Weight:    args.Weight,
		Location:  args.Location,
		Timestamp: args.Timestamp,
		Status:    domain.StatusRecorded,
		Points:    d.points.PointsFor(args.WasteType, args.Weight),
	}

	if createErr := d.disposalRepo.Create(ctx, record); createErr != nil {
		return nil, fmt.Errorf("recording disposal: %w", createErr)
	}

	if _, creditErr := d.points.Credit(ctx, record.UserID, record.Points); creditErr != nil {
		return nil, fmt.Errorf("recording disposal: %w", creditErr)
	}

	d.log.Infof("disposal %s recorded, %s points for user %s", record.ID, record.Points, record.UserID)
	return record, nil
}

func (d *DisposalService) Get(ctx context.Context, id string) (*domain.DisposalRecord, error) {
	record, err := d.disposalRepo.Find(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return record, nil
}

// UpdateStatus переводит запись в новый статус по конечному автомату
// recorded → collected → processed → completed. Недопустимый переход возвращает
// *domain.InvalidTransitionError. История статусов только дополняется.
func (d *DisposalService) UpdateStatus(ctx context.Context, args repoargs.StatusUpdate) (*domain.DisposalRecord, error) {
	record, findErr := d.disposalRepo.Find(ctx, args.ID)
	if findErr != nil {
		return nil, fmt.Errorf("updating status of disposal %s: %w", args.ID, findErr)
	}

	if !record.Status.CanTransitionTo(args.NewStatus) {
		return nil, domain.NewInvalidTransitionError(record.Status, args.NewStatus)
	}

	record.StatusHistory = append(record.StatusHistory, domain.StatusTransition{
		From:      record.Status,
		To:        args.NewStatus,
		Operator:  args.Operator,
		Timestamp: time.Now().UTC(),
		Remarks:   args.Remarks,
	})
	record.Status = args.NewStatus

	if saveErr := d.disposalRepo.Save(ctx, record); saveErr != nil {
		return nil, fmt.Errorf("updating status of disposal %s: %w", args.ID, saveErr)
	}

	d.log.Infof("disposal %s moved to status %s by %s", record.ID, record.Status, args.Operator)
	return record, nil
}
