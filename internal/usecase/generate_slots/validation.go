package generate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется синхронно, до любых обращений к хранилищу и внешним сервисам -
// при ошибке генерация не начинается вовсе
func validateRequest(req *Request) error {
	if req.GigID <= 0 {
		return ErrGigRequired
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidDateRange
	}

	if req.SlotDurationHours != nil {
		if err := validateDuration(*req.SlotDurationHours); err != nil {
			return err
		}
	}

	if req.Capacity != nil {
		if err := validateCapacity(*req.Capacity); err != nil {
			return err
		}
	}

	if req.StartHour != nil && (*req.StartHour < 0 || *req.StartHour > 23) {
		return fmt.Errorf("%w: startHour must be in range 0-23", ErrInvalidInput)
	}

	if req.EndHour != nil && (*req.EndHour < 1 || *req.EndHour > 24) {
		return fmt.Errorf("%w: endHour must be in range 1-24", ErrInvalidInput)
	}

	if req.StartHour != nil && req.EndHour != nil && *req.StartHour >= *req.EndHour {
		return ErrInvalidHourRange
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateParams валидирует эффективные параметры после применения дефолтов
// Запрос мог задать только одну границу окна, поэтому соотношение границ
// проверяется ещё раз на итоговых значениях
func validateParams(params *generationParams) error {
	if params.StartHour >= params.EndHour {
		return ErrInvalidHourRange
	}

	if err := validateDuration(params.DurationHours); err != nil {
		return err
	}

	return validateCapacity(params.Capacity)
}

func validateDuration(durationHours float64) error {
	if durationHours < domain.MinSlotDurationHours || durationHours > domain.MaxSlotDurationHours {
		return fmt.Errorf("%w: duration must be between %v and %v hours",
			ErrInvalidDuration, domain.MinSlotDurationHours, domain.MaxSlotDurationHours)
	}
	return nil
}

func validateCapacity(capacity int) error {
	if capacity < domain.MinCapacity || capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidCapacity, domain.MinCapacity, domain.MaxCapacity)
	}
	return nil
}
