package generate_slots

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/gigservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// CreateBatch создает пачку слотов, пропуская конфликтующие
	CreateBatch(ctx context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error)
}

// DefaultsRepository интерфейс репозитория настроек генерации
type DefaultsRepository interface {
	GetByCompanyID(ctx context.Context, companyID int64) (*domain.CompanyDefaults, error)
}

// GigServiceClient интерфейс клиента для GigService
type GigServiceClient interface {
	GetGig(ctx context.Context, gigID int64) (*gigservice.Gig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
