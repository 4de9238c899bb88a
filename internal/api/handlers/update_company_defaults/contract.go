package update_company_defaults

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/defaults/models"
)

type DefaultsService interface {
	Upsert(ctx context.Context, companyID int64, req *models.UpdateDefaultsRequest) (*models.DefaultsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
