package repservice

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Rep модель представителя из RepService
type Rep struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	Avatar            *string            `json:"avatar,omitempty"`
	Specialties       []string           `json:"specialties"`
	PerformanceScore  *float64           `json:"performanceScore,omitempty"`
	PreferredHours    PreferredHours     `json:"preferredHours"`
	AttendanceScore   float64            `json:"attendanceScore"`
	AttendanceHistory []AttendanceRecord `json:"attendanceHistory"`
}

// PreferredHours предпочитаемое рабочее окно агента (часы, 24-часовой формат)
type PreferredHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// AttendanceRecord отметка о посещении прошедшего слота
type AttendanceRecord struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	SlotID   int64   `json:"slotId"`
	Attended bool    `json:"attended"`
	Reason   *string `json:"reason,omitempty"`
}

// ToDomain конвертирует в domain модель
func (r *Rep) ToDomain() *domain.Rep {
	history := make([]domain.AttendanceRecord, 0, len(r.AttendanceHistory))
	for _, rec := range r.AttendanceHistory {
		date, err := time.Parse(domain.DateFormat, rec.Date)
		if err != nil {
			// Некорректные записи истории пропускаем - они не критичны для отчётов
			continue
		}
		history = append(history, domain.AttendanceRecord{
			Date:     date,
			SlotID:   rec.SlotID,
			Attended: rec.Attended,
			Reason:   rec.Reason,
		})
	}

	return &domain.Rep{
		ID:                r.ID,
		Name:              r.Name,
		Email:             r.Email,
		Avatar:            r.Avatar,
		Specialties:       r.Specialties,
		PerformanceScore:  r.PerformanceScore,
		PreferredHours:    domain.PreferredHours{Start: r.PreferredHours.Start, End: r.PreferredHours.End},
		AttendanceScore:   r.AttendanceScore,
		AttendanceHistory: history,
	}
}

// ErrorResponse модель ошибки от RepService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
