package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/internal/repository/repoargs"
	"github.com/fsdevblog/ecopoints/pkg/keylock"
)

// PointsService начисляет баллы за утилизацию и двигает балансы аккаунтов.
// Все мутации баланса сериализуются через keylock по userId: проверка
// достаточности средств и последующая запись образуют одну критическую секцию,
// гонка check-then-write из исходного контракта закрыта намеренно.
type PointsService struct {
	userRepo  UserRepository
	transRepo TransactionRepository
	rates     domain.RateTable
	locks     *keylock.KeyLock
	log       logrus.FieldLogger
}

func NewPointsService(
	userRepo UserRepository,
	transRepo TransactionRepository,
	rates domain.RateTable,
	log logrus.FieldLogger,
) *PointsService {
	return &PointsService{
		userRepo:  userRepo,
		transRepo: transRepo,
		rates:     rates,
		locks:     keylock.New(),
		log:       log,
	}
}

// PointsFor вычисляет баллы по таблице ставок. Чистая функция.
func (s *PointsService) PointsFor(wasteType domain.WasteType, weight decimal.Decimal) decimal.Decimal {
	return s.rates.PointsFor(wasteType, weight)
}

func (s *PointsService) GetUser(ctx context.Context, userID string) (*domain.UserAccount, error) {
	account, err := s.userRepo.Find(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return account, nil
}

// Credit добавляет amount к балансу юзера, лениво создавая аккаунт с нулевым
// балансом при первом начислении.
func (s *PointsService) Credit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.UserAccount, error) {
	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	account, err := s.loadOrInitAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.TotalPoints = account.TotalPoints.Add(amount)
	if saveErr := s.userRepo.Save(ctx, account); saveErr != nil {
		return nil, fmt.Errorf("crediting user %s: %w", userID, saveErr)
	}

	s.log.Infof("credited %s points to user %s, balance %s", amount, userID, account.TotalPoints)
	return account, nil
}

// Transfer атомарно переводит целое число баллов между двумя аккаунтами и пишет
// аудит-запись. Оба ключа аккаунтов блокируются в отсортированном порядке на всю
// операцию. Возвращаемые ошибки: domain.ErrInvalidAmount для points <= 0,
// domain.ErrRecordNotFound для отсутствующего отправителя,
// domain.ErrNotEnoughBalance при нехватке баллов.
func (s *PointsService) Transfer(
	ctx context.Context,
	fromUserID, toUserID string,
	points int64,
	remarks string,
) (*domain.PointsTransaction, error) {
	if points <= 0 {
		return nil, fmt.Errorf("transferring %d points: %w", points, domain.ErrInvalidAmount)
	}

	s.locks.LockAll(fromUserID, toUserID)
	defer s.locks.UnlockAll(fromUserID, toUserID)

	source, sourceErr := s.userRepo.Find(ctx, fromUserID)
	if sourceErr != nil {
		return nil, fmt.Errorf("transferring from user %s: %w", fromUserID, sourceErr)
	}

	amount := decimal.NewFromInt(points)
	if source.TotalPoints.LessThan(amount) {
		return nil, fmt.Errorf(
			"transferring %d points from user %s with balance %s: %w",
			points, fromUserID, source.TotalPoints, domain.ErrNotEnoughBalance,
		)
	}

	source.TotalPoints = source.TotalPoints.Sub(amount)
	if saveErr := s.userRepo.Save(ctx, source); saveErr != nil {
		return nil, fmt.Errorf("debiting user %s: %w", fromUserID, saveErr)
	}

	// получатель загружается после записи дебета, чтобы перевод самому себе
	// не откатывал списание устаревшим снапшотом
	target, targetErr := s.loadOrInitAccount(ctx, toUserID)
	if targetErr != nil {
		return nil, targetErr
	}
	target.TotalPoints = target.TotalPoints.Add(amount)
	if saveErr := s.userRepo.Save(ctx, target); saveErr != nil {
		return nil, fmt.Errorf("crediting user %s: %w", toUserID, saveErr)
	}

	transaction, transErr := s.transRepo.Create(ctx, repoargs.TransferCreate{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Points:     points,
		Remarks:    remarks,
	})
	if transErr != nil {
		return nil, fmt.Errorf("recording transfer audit: %w", transErr)
	}

	s.log.Infof("transferred %d points from %s to %s, transaction %s",
		points, fromUserID, toUserID, transaction.TransactionID)
	return transaction, nil
}

func (s *PointsService) loadOrInitAccount(ctx context.Context, userID string) (*domain.UserAccount, error) {
	account, err := s.userRepo.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.UserAccount{
				DocType:     domain.DocTypeUser,
				UserID:      userID,
				TotalPoints: decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("loading account of user %s: %w", userID, err)
	}
	return account, nil
}
