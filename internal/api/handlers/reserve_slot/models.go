package reserve_slot

import (
	slotsModels "github.com/m04kA/SMC-SchedulerService/internal/service/slots/models"
	reserveSlot "github.com/m04kA/SMC-SchedulerService/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	AgentID int64   `json:"agentId"`
	Notes   *string `json:"notes,omitempty"`
}

// ReserveSlotResponse HTTP response model
type ReserveSlotResponse struct {
	Message     string                          `json:"message"`
	Reservation slotsModels.ReservationResponse `json:"reservation"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReserveSlotResponse {
	return &ReserveSlotResponse{
		Message:     resp.Message,
		Reservation: *slotsModels.FromDomainReservation(resp.Reservation),
	}
}
