package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	defaultsRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/defaults"
	gigClient "github.com/m04kA/SMC-SchedulerService/internal/integrations/gigservice"
)

// UseCase use case генерации сетки слотов для гига
type UseCase struct {
	slotRepo     SlotRepository
	defaultsRepo DefaultsRepository
	gigClient    GigServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	defaultsRepo DefaultsRepository,
	gigClient GigServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		defaultsRepo: defaultsRepo,
		gigClient:    gigClient,
		logger:       logger,
	}
}

// Execute выполняет use case генерации слотов
// Повторная генерация того же окна безопасна: конфликтующие слоты
// пропускаются на уровне хранилища, недостающие досоздаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: gig=%d, range=%s..%s",
		req.GigID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Локальная валидация - до любых сетевых вызовов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем гиг - проверка существования и источник company_id
	gig, err := uc.gigClient.GetGig(ctx, req.GigID)
	if err != nil {
		if errors.Is(err, gigClient.ErrGigNotFound) {
			uc.logger.Warn("GenerateSlots: gig id=%d not found", req.GigID)
			return nil, ErrGigNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get gig id=%d: %v", req.GigID, err)
		return nil, fmt.Errorf("%w: failed to get gig: %v", ErrInternal, err)
	}

	// 3. Применяем настройки генерации компании для опущенных параметров
	params, err := uc.resolveParams(ctx, gig.CompanyID, req)
	if err != nil {
		return nil, err
	}

	// 4. Проверяем итоговые параметры после применения дефолтов
	if err := validateParams(params); err != nil {
		uc.logger.Warn("GenerateSlots: resolved params validation failed: %v", err)
		return nil, err
	}

	// 5. Разворачиваем сетку слотов
	grid, err := buildSlotGrid(req.GigID, gig.CompanyID, params)
	if err != nil {
		return nil, err
	}

	// 6. Создаем слоты одним запросом; дубликаты пропускает хранилище
	created, err := uc.slotRepo.CreateBatch(ctx, grid)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to create slots: %v", err)
		return nil, fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
	}

	skipped := len(grid) - len(created)
	message := fmt.Sprintf("generated %d slots for gig %q from %s to %s",
		len(created), gig.Name,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	if skipped > 0 {
		message = fmt.Sprintf("%s (%d already existed and were skipped)", message, skipped)
	}

	uc.logger.Info("GenerateSlots: gig=%d created=%d skipped=%d", req.GigID, len(created), skipped)

	return &Response{
		Message: message,
		Slots:   created,
	}, nil
}

// resolveParams собирает эффективные параметры генерации:
// значения из запроса имеют приоритет, затем сохранённые настройки компании,
// затем встроенные дефолты
func (uc *UseCase) resolveParams(ctx context.Context, companyID int64, req *Request) (*generationParams, error) {
	stored, err := uc.defaultsRepo.GetByCompanyID(ctx, companyID)
	if err != nil && !errors.Is(err, defaultsRepo.ErrDefaultsNotFound) {
		uc.logger.Error("GenerateSlots: failed to get company defaults: %v", err)
		return nil, fmt.Errorf("%w: failed to get company defaults: %v", ErrInternal, err)
	}

	if stored == nil {
		stored = domain.FallbackDefaults(companyID)
		uc.logger.Info("GenerateSlots: using built-in defaults for company=%d", companyID)
	}

	params := &generationParams{
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartHour:     stored.StartHour,
		EndHour:       stored.EndHour,
		DurationHours: stored.SlotDurationHours,
		Capacity:      stored.Capacity,
		Notes:         req.Notes,
	}

	if req.StartHour != nil {
		params.StartHour = *req.StartHour
	}
	if req.EndHour != nil {
		params.EndHour = *req.EndHour
	}
	if req.SlotDurationHours != nil {
		params.DurationHours = *req.SlotDurationHours
	}
	if req.Capacity != nil {
		params.Capacity = *req.Capacity
	}

	return params, nil
}
