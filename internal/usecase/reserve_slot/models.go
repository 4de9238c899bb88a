package reserve_slot

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// Request модель запроса на бронирование слота
type Request struct {
	SlotID  int64   // ID слота
	AgentID int64   // ID агента, занимающего место
	Notes   *string // Заметка к брони (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	Message     string              // Человекочитаемое подтверждение
	Reservation *domain.Reservation // Созданная бронь
}
