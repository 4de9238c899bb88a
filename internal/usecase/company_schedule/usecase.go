package company_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/gigservice"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

// UseCase use case построения расписания компании на дату
// Read-only агрегация: данные собираются из трёх источников (слоты, GigService,
// RepService), сведение в часы по агентам выполняется чистой функцией
type UseCase struct {
	slotRepo  SlotRepository
	gigClient GigServiceClient
	repClient RepServiceClient
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	gigClient GigServiceClient,
	repClient RepServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		gigClient: gigClient,
		repClient: repClient,
		logger:    logger,
	}
}

// Execute выполняет use case построения расписания компании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompanySchedule: company=%d, date=%s",
		req.CompanyID, req.Date.Format(domain.DateFormat))

	if req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Проверяем, что компания существует
	company, err := uc.gigClient.GetCompany(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, gigservice.ErrCompanyNotFound) {
			uc.logger.Warn("CompanySchedule: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("CompanySchedule: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	// 2. Гиги компании - для названий и цветов в деталях расписания
	gigs, err := uc.gigClient.ListGigsByCompany(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("CompanySchedule: failed to list gigs for company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to list gigs: %v", ErrInternal, err)
	}
	gigsByID := make(map[int64]*domain.Gig, len(gigs))
	for _, g := range gigs {
		gigsByID[g.ID] = g.ToDomain()
	}

	// 3. Слоты компании на дату вместе с активными бронями
	slots, err := uc.slotRepo.List(ctx, domain.SlotsFilter{
		CompanyID:        ptr.Ptr(req.CompanyID),
		Date:             ptr.Ptr(req.Date),
		WithReservations: true,
	})
	if err != nil {
		uc.logger.Error("CompanySchedule: failed to list slots for company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	total, reps := aggregateSchedule(slots, gigsByID)

	// 4. Обогащаем агентов профилями из RepService
	// Деградация сервиса не валит расписание: вместо имени подставляется ID
	for i := range reps {
		reps[i].Name = fmt.Sprintf("Agent #%d", reps[i].AgentID)

		rep, err := uc.repClient.GetRepWithGracefulDegradation(ctx, reps[i].AgentID)
		if err != nil {
			uc.logger.Warn("CompanySchedule: rep profile id=%d unavailable: %v", reps[i].AgentID, err)
			continue
		}
		if rep != nil {
			reps[i].Name = rep.Name
			reps[i].Avatar = rep.Avatar
		}
	}

	uc.logger.Info("CompanySchedule: company=%d, date=%s, reps=%d, total=%.2f hours",
		req.CompanyID, req.Date.Format(domain.DateFormat), len(reps), total)

	return &Response{
		CompanyID:   req.CompanyID,
		CompanyName: company.Name,
		Date:        time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC),
		TotalHours:  total,
		Reps:        reps,
	}, nil
}
