package company_schedule

import (
	"context"

	companySchedule "github.com/m04kA/SMC-SchedulerService/internal/usecase/company_schedule"
)

type CompanyScheduleUseCase interface {
	Execute(ctx context.Context, req *companySchedule.Request) (*companySchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
