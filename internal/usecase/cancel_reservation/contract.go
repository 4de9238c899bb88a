package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	// GetByID внутри транзакции блокирует строку брони (FOR UPDATE)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// Cancel переводит бронь в статус cancelled
	Cancel(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// Release атомарно освобождает место в слоте
	Release(ctx context.Context, slotID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
