package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/slots/models"
)

type SlotService interface {
	ListReservations(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
