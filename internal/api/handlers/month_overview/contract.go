package month_overview

import (
	"context"

	monthOverview "github.com/m04kA/SMC-SchedulerService/internal/usecase/month_overview"
)

type MonthOverviewUseCase interface {
	Execute(ctx context.Context, req *monthOverview.Request) (*monthOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
