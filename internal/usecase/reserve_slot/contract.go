package reserve_slot

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByID внутри транзакции блокирует строку слота (FOR UPDATE)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	// Reserve атомарно занимает место: условный инкремент на стороне БД
	Reserve(ctx context.Context, slotID int64) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
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
