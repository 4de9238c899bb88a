package get_company_defaults

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/defaults/models"
)

type DefaultsService interface {
	Get(ctx context.Context, companyID int64) (*models.DefaultsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
