package company_schedule

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/gigservice"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/repservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.TimeSlot, error)
}

// GigServiceClient интерфейс клиента для GigService
type GigServiceClient interface {
	GetCompany(ctx context.Context, companyID int64) (*gigservice.Company, error)
	ListGigsByCompany(ctx context.Context, companyID int64) ([]*gigservice.Gig, error)
}

// RepServiceClient интерфейс клиента для RepService
type RepServiceClient interface {
	GetRepWithGracefulDegradation(ctx context.Context, repID int64) (*repservice.Rep, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
