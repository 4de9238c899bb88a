package company_schedule

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// Request модель запроса расписания компании на дату
type Request struct {
	CompanyID int64     // ID компании
	Date      time.Time // Календарная дата
}

// Response расписание компании на дату: часы по агентам и детали по слотам
// Агенты без занятых слотов в ответ не попадают; пустой список Reps - явное
// состояние "никто не назначен", а не ошибка
type Response struct {
	CompanyID   int64         // ID компании
	CompanyName string        // Название компании
	Date        time.Time     // Дата, на которую построено расписание
	TotalHours  float64       // Суммарные часы по всем агентам
	Reps        []RepSchedule // Разбивка по агентам
}

// RepSchedule часы и слоты одного агента
type RepSchedule struct {
	AgentID    int64           // ID агента
	Name       string          // Имя агента (ID-заглушка при недоступном RepService)
	Avatar     *string         // Аватар агента (опционально)
	TotalHours float64         // Суммарные часы агента за дату
	Slots      []ScheduledSlot // Слоты агента, отсортированы по времени начала
}

// ScheduledSlot деталь одного назначения агента на слот
type ScheduledSlot struct {
	SlotID        int64            // ID слота
	GigID         int64            // ID гига
	GigName       string           // Название гига
	GigColor      string           // Цвет гига для отображения
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время конца
	DurationHours float64          // Длительность в часах
	Notes         *string          // Заметка: у брони приоритет над заметкой слота
}
