package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/reservation"
)

// UseCase use case отмены брони
// Отмена мягкая: бронь переводится в cancelled, место в родительском слоте
// освобождается, заполненный слот возвращается в available
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: reservation=%d", req.ReservationID)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем бронь с блокировкой строки
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CancelReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CancelReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. Повторная отмена - ошибка, а не no-op
		if res.IsCancelled() {
			uc.logger.Warn("CancelReservation: reservation id=%d already cancelled", req.ReservationID)
			return ErrAlreadyCancelled
		}

		// 3. Отменяем бронь
		if err := uc.reservationRepo.Cancel(txCtx, req.ReservationID); err != nil {
			if errors.Is(err, reservationRepo.ErrAlreadyCancelled) {
				return ErrAlreadyCancelled
			}
			uc.logger.Error("CancelReservation: failed to cancel reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
		}

		// 4. Освобождаем место в родительском слоте
		if err := uc.slotRepo.Release(txCtx, res.SlotID); err != nil {
			uc.logger.Error("CancelReservation: failed to release slot id=%d: %v", res.SlotID, err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		// 5. Перечитываем бронь, чтобы вернуть актуальные статус и cancelled_at
		updated, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			uc.logger.Error("CancelReservation: failed to reload reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to reload reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelReservation: successfully cancelled reservation id=%d, slot=%d",
		result.ID, result.SlotID)

	return &Response{
		Message: fmt.Sprintf("reservation for %s %s-%s cancelled",
			result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime),
		Reservation: result,
	}, nil
}
