package reserve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
)

// UseCase use case бронирования места в слоте
type UseCase struct {
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case бронирования
// Проверка вместимости и инкремент занятости выполняются в сериализуемой
// транзакции одним условным UPDATE - два конкурентных бронирования не могут
// занять последнее место одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: slot=%d, agent=%d", req.SlotID, req.AgentID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем слот с блокировкой строки
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("ReserveSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("ReserveSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2. Отменённый слот бронировать нельзя - статус терминальный
		if slot.IsCancelled() {
			uc.logger.Warn("ReserveSlot: slot id=%d is cancelled", req.SlotID)
			return ErrSlotCancelled
		}

		// 3. Занимаем место условным обновлением
		if err := uc.slotRepo.Reserve(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrNoCapacity) {
				uc.logger.Warn("ReserveSlot: slot id=%d is full, %d/%d spots taken",
					req.SlotID, slot.ReservedCount, slot.Capacity)
				return ErrSlotFull
			}
			uc.logger.Error("ReserveSlot: failed to reserve slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 4. Создаем бронь с денормализацией даты и времени слота
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			SlotID:        slot.ID,
			AgentID:       req.AgentID,
			GigID:         slot.GigID,
			Date:          slot.Date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			DurationHours: slot.DurationHours,
			Status:        domain.ReservationStatusReserved,
			Notes:         req.Notes,
		})
		if err != nil {
			uc.logger.Error("ReserveSlot: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveSlot: successfully created reservation id=%d for slot=%d, agent=%d",
		result.ID, req.SlotID, req.AgentID)

	return &Response{
		Message: fmt.Sprintf("slot reserved for %s %s-%s",
			result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime),
		Reservation: result,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.AgentID <= 0 {
		return fmt.Errorf("%w: agentID must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
