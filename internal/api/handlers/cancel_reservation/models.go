package cancel_reservation

import (
	slotsModels "github.com/m04kA/SMC-SchedulerService/internal/service/slots/models"
	cancelReservation "github.com/m04kA/SMC-SchedulerService/internal/usecase/cancel_reservation"
)

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	Message     string                          `json:"message"`
	Reservation slotsModels.ReservationResponse `json:"reservation"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		Message:     resp.Message,
		Reservation: *slotsModels.FromDomainReservation(resp.Reservation),
	}
}
