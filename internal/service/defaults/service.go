package defaults

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	defaultsRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/defaults"
	gigClient "github.com/m04kA/SMC-SchedulerService/internal/integrations/gigservice"
	"github.com/m04kA/SMC-SchedulerService/internal/service/defaults/models"
)

// Service сервис настроек генерации слотов по компаниям
type Service struct {
	defaultsRepo DefaultsRepository
	gigClient    GigServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	defaultsRepo DefaultsRepository,
	gigClient GigServiceClient,
	logger Logger,
) *Service {
	return &Service{
		defaultsRepo: defaultsRepo,
		gigClient:    gigClient,
		logger:       logger,
	}
}

// Get получает настройки генерации компании
// Если компания ничего не сохраняла, возвращаются встроенные значения
// с признаком Stored=false - это не ошибка
func (s *Service) Get(ctx context.Context, companyID int64) (*models.DefaultsResponse, error) {
	s.logger.Info("Get: fetching defaults for company=%d", companyID)

	if err := s.checkCompanyExists(ctx, companyID); err != nil {
		return nil, err
	}

	d, err := s.defaultsRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, defaultsRepo.ErrDefaultsNotFound) {
			s.logger.Info("Get: no stored defaults for company=%d, using built-in", companyID)
			return models.FromDomainDefaults(domain.FallbackDefaults(companyID), false), nil
		}
		s.logger.Error("Get: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched defaults for company=%d", companyID)
	return models.FromDomainDefaults(d, true), nil
}

// Upsert сохраняет настройки генерации компании
func (s *Service) Upsert(ctx context.Context, companyID int64, req *models.UpdateDefaultsRequest) (*models.DefaultsResponse, error) {
	s.logger.Info("Upsert: saving defaults for company=%d", companyID)

	if err := s.validateDefaults(req); err != nil {
		s.logger.Warn("Upsert: validation failed for company=%d: %v", companyID, err)
		return nil, err
	}

	if err := s.checkCompanyExists(ctx, companyID); err != nil {
		return nil, err
	}

	saved, err := s.defaultsRepo.Upsert(ctx, req.ToDomainDefaults(companyID))
	if err != nil {
		s.logger.Error("Upsert: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved defaults for company=%d", companyID)
	return models.FromDomainDefaults(saved, true), nil
}

// Вспомогательные методы

// checkCompanyExists проверяет существование компании через GigService
func (s *Service) checkCompanyExists(ctx context.Context, companyID int64) error {
	_, err := s.gigClient.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, gigClient.ErrCompanyNotFound) {
			s.logger.Warn("checkCompanyExists: company id=%d not found", companyID)
			return ErrCompanyNotFound
		}
		s.logger.Error("checkCompanyExists: failed to get company id=%d: %v", companyID, err)
		return fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}
	return nil
}

// validateDefaults валидирует параметры настроек генерации
func (s *Service) validateDefaults(req *models.UpdateDefaultsRequest) error {
	if req.StartHour < 0 || req.StartHour > 23 {
		return fmt.Errorf("%w: startHour must be between 0 and 23", ErrInvalidInput)
	}

	if req.EndHour < 1 || req.EndHour > 24 {
		return fmt.Errorf("%w: endHour must be between 1 and 24", ErrInvalidInput)
	}

	if req.EndHour <= req.StartHour {
		return fmt.Errorf("%w: endHour must be after startHour", ErrInvalidInput)
	}

	if req.SlotDurationHours < domain.MinSlotDurationHours || req.SlotDurationHours > domain.MaxSlotDurationHours {
		return fmt.Errorf("%w: slotDurationHours must be between %.2f and %.1f",
			ErrInvalidInput, domain.MinSlotDurationHours, domain.MaxSlotDurationHours)
	}

	if req.Capacity < domain.MinCapacity || req.Capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	return nil
}
