package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	slotsModels "github.com/m04kA/SMC-SchedulerService/internal/service/slots/models"
	generateSlots "github.com/m04kA/SMC-SchedulerService/internal/usecase/generate_slots"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	GigID             int64    `json:"gigId"`
	StartDate         string   `json:"startDate"` // "2026-03-01"
	EndDate           string   `json:"endDate"`   // "2026-03-07"
	SlotDurationHours *float64 `json:"slotDurationHours,omitempty"`
	Capacity          *int     `json:"capacity,omitempty"`
	StartHour         *int     `json:"startHour,omitempty"`
	EndHour           *int     `json:"endHour,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Message string                     `json:"message"`
	Slots   []slotsModels.SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest() (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		GigID:             r.GigID,
		StartDate:         startDate,
		EndDate:           endDate,
		SlotDurationHours: r.SlotDurationHours,
		Capacity:          r.Capacity,
		StartHour:         r.StartHour,
		EndHour:           r.EndHour,
		Notes:             r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		Message: resp.Message,
		Slots:   slotsModels.FromDomainSlotList(resp.Slots).Slots,
	}
}
