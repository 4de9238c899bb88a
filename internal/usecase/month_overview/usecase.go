package month_overview

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

// UseCase use case построения календарной сетки на месяц
// Слоты видимого диапазона забираются одним запросом, дальше сетка собирается
// в памяти чистыми функциями
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case построения календарной сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	first, _ := monthBounds(req.Month)
	start, end := gridBounds(req.Month)

	uc.logger.Info("MonthOverview: month=%s, range=%s..%s",
		first.Format("2006-01"), start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	slots, err := uc.slotRepo.List(ctx, domain.SlotsFilter{
		GigID:     req.GigID,
		CompanyID: req.CompanyID,
		DateFrom:  ptr.Ptr(start),
		DateTo:    ptr.Ptr(end),
	})
	if err != nil {
		uc.logger.Error("MonthOverview: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	return &Response{
		Month: first,
		Weeks: buildMonthGrid(req.Month, req.Selected, slots),
	}, nil
}
