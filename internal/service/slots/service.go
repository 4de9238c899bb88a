package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SchedulerService/internal/service/slots/models"
)

// Service сервис для чтения и администрирования слотов
type Service struct {
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// List получает слоты с гибкой фильтрацией
//
// Примеры использования:
// - Слоты гига: List(ctx, &ListSlotsRequest{GigID: &gigID})
// - Слоты компании на дату: указать CompanyID и Date
// - Слоты за период: DateFrom и DateTo
// - Только свободные: Status = "available"
// - С активными бронями: WithReservations = true
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots, gig=%v, company=%v", req.GigID, req.CompanyID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%d", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// Delete безвозвратно удаляет слот
// Слот с активными бронями удалить нельзя - сначала брони должны быть отменены
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting slot id=%d", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if slot.IsOccupied() {
		s.logger.Warn("Delete: slot id=%d has %d active reservations", id, slot.ReservedCount)
		return ErrSlotOccupied
	}

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted slot id=%d", id)
	return nil
}

// ListReservations получает брони с фильтрацией по агенту, гигу, слоту и статусу
func (s *Service) ListReservations(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListReservations: fetching reservations, agent=%v, gig=%v, slot=%v",
		req.AgentID, req.GigID, req.SlotID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListReservations: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListReservations: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}
