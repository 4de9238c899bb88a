package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модель запроса на генерацию слотов
// StartHour, EndHour, SlotDurationHours и Capacity опциональны - при отсутствии
// берутся из настроек компании, а при их отсутствии из встроенных дефолтов
type Request struct {
	GigID             int64      // ID гига (обязательно)
	StartDate         time.Time  // Начало диапазона (включительно)
	EndDate           time.Time  // Конец диапазона (включительно)
	SlotDurationHours *float64   // Длительность слота в часах (0.5, 1, 1.5 ...)
	Capacity          *int       // Вместимость каждого слота
	StartHour         *int       // Начало рабочего окна (час, 24-часовой формат)
	EndHour           *int       // Конец рабочего окна (час)
	Notes             *string    // Заметка, копируется в каждый слот (опционально)
}

// Response модель ответа с созданными слотами
type Response struct {
	Message string             // Человекочитаемая сводка генерации
	Slots   []*domain.TimeSlot // Реально созданные слоты (без пропущенных дубликатов)
}

// generationParams эффективные параметры генерации после применения дефолтов
type generationParams struct {
	StartDate     time.Time
	EndDate       time.Time
	StartHour     int
	EndHour       int
	DurationHours float64
	Capacity      int
	Notes         *string
}
