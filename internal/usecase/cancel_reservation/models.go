package cancel_reservation

import "github.com/m04kA/SMC-SchedulerService/internal/domain"

// Request модель запроса на отмену брони
type Request struct {
	ReservationID int64 // ID отменяемой брони
}

// Response модель ответа с отменённой бронью
type Response struct {
	Message     string              // Человекочитаемое подтверждение
	Reservation *domain.Reservation // Бронь после отмены
}
