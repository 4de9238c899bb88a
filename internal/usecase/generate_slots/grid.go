package generate_slots

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// buildSlotGrid разворачивает диапазон дат и рабочее окно в полный набор слотов:
// каждая дата из [StartDate, EndDate] x каждый шаг длительности из [StartHour, EndHour)
// Слот, не помещающийся целиком до EndHour, не создаётся - слоты через
// границу окна (и тем более через полночь) не поддерживаются
func buildSlotGrid(gigID, companyID int64, params *generationParams) ([]*domain.TimeSlot, error) {
	stepMinutes := int(math.Round(params.DurationHours * domain.MinutesPerHour))
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration %v hours rounds to zero minutes", ErrInvalidDuration, params.DurationHours)
	}

	windowStart := params.StartHour * domain.MinutesPerHour
	windowEnd := params.EndHour * domain.MinutesPerHour

	slots := make([]*domain.TimeSlot, 0)

	for date := dateOnly(params.StartDate); !date.After(dateOnly(params.EndDate)); date = date.AddDate(0, 0, 1) {
		for minute := windowStart; minute+stepMinutes <= windowEnd; minute += stepMinutes {
			startTime, err := types.NewTimeStringFromMinutes(minute)
			if err != nil {
				return nil, fmt.Errorf("%w: build start time: %v", ErrInternal, err)
			}

			endTime, err := types.NewTimeStringFromMinutes(minute + stepMinutes)
			if err != nil {
				return nil, fmt.Errorf("%w: build end time: %v", ErrInternal, err)
			}

			slots = append(slots, &domain.TimeSlot{
				GigID:         gigID,
				CompanyID:     companyID,
				Date:          date,
				StartTime:     startTime,
				EndTime:       endTime,
				DurationHours: params.DurationHours,
				Capacity:      params.Capacity,
				ReservedCount: 0,
				Status:        domain.DeriveStatus(0, params.Capacity, false),
				Notes:         params.Notes,
			})
		}
	}

	return slots, nil
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
