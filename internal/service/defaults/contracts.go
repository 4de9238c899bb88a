package defaults

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/gigservice"
)

// DefaultsRepository интерфейс репозитория настроек генерации
type DefaultsRepository interface {
	GetByCompanyID(ctx context.Context, companyID int64) (*domain.CompanyDefaults, error)
	Upsert(ctx context.Context, d *domain.CompanyDefaults) (*domain.CompanyDefaults, error)
}

// GigServiceClient интерфейс клиента для GigService
type GigServiceClient interface {
	GetCompany(ctx context.Context, companyID int64) (*gigservice.Company, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
