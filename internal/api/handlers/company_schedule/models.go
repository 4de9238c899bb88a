package company_schedule

import (
	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	companySchedule "github.com/m04kA/SMC-SchedulerService/internal/usecase/company_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	CompanyID   int64                 `json:"companyId"`
	CompanyName string                `json:"companyName"`
	Date        string                `json:"date"` // "2026-03-15"
	TotalHours  float64               `json:"totalHours"`
	Reps        []RepScheduleResponse `json:"reps"`
}

// RepScheduleResponse часы и слоты одного агента
type RepScheduleResponse struct {
	AgentID    int64                   `json:"agentId"`
	Name       string                  `json:"name"`
	Avatar     *string                 `json:"avatar,omitempty"`
	TotalHours float64                 `json:"totalHours"`
	Slots      []ScheduledSlotResponse `json:"slots"`
}

// ScheduledSlotResponse деталь одного назначения
type ScheduledSlotResponse struct {
	SlotID        int64   `json:"slotId"`
	GigID         int64   `json:"gigId"`
	GigName       string  `json:"gigName"`
	GigColor      string  `json:"gigColor"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	Notes         *string `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *companySchedule.Response) *ScheduleResponse {
	reps := make([]RepScheduleResponse, 0, len(resp.Reps))
	for _, rep := range resp.Reps {
		slots := make([]ScheduledSlotResponse, 0, len(rep.Slots))
		for _, slot := range rep.Slots {
			slots = append(slots, ScheduledSlotResponse{
				SlotID:        slot.SlotID,
				GigID:         slot.GigID,
				GigName:       slot.GigName,
				GigColor:      slot.GigColor,
				StartTime:     slot.StartTime.String(),
				EndTime:       slot.EndTime.String(),
				DurationHours: slot.DurationHours,
				Notes:         slot.Notes,
			})
		}
		reps = append(reps, RepScheduleResponse{
			AgentID:    rep.AgentID,
			Name:       rep.Name,
			Avatar:     rep.Avatar,
			TotalHours: rep.TotalHours,
			Slots:      slots,
		})
	}

	return &ScheduleResponse{
		CompanyID:   resp.CompanyID,
		CompanyName: resp.CompanyName,
		Date:        resp.Date.Format(domain.DateFormat),
		TotalHours:  resp.TotalHours,
		Reps:        reps,
	}
}
