package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// Request модели

// UpdateDefaultsRequest запрос на сохранение настроек генерации компании
type UpdateDefaultsRequest struct {
	StartHour         int     `json:"startHour"`
	EndHour           int     `json:"endHour"`
	SlotDurationHours float64 `json:"slotDurationHours"`
	Capacity          int     `json:"capacity"`
}

// ToDomainDefaults конвертирует request в domain модель
func (r *UpdateDefaultsRequest) ToDomainDefaults(companyID int64) *domain.CompanyDefaults {
	return &domain.CompanyDefaults{
		CompanyID:         companyID,
		StartHour:         r.StartHour,
		EndHour:           r.EndHour,
		SlotDurationHours: r.SlotDurationHours,
		Capacity:          r.Capacity,
	}
}

// Response модели

// DefaultsResponse ответ с настройками генерации компании
type DefaultsResponse struct {
	CompanyID         int64   `json:"companyId"`
	StartHour         int     `json:"startHour"`
	EndHour           int     `json:"endHour"`
	SlotDurationHours float64 `json:"slotDurationHours"`
	Capacity          int     `json:"capacity"`

	// Stored false означает, что компания настроек не сохраняла и
	// действуют встроенные значения
	Stored bool `json:"stored"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainDefaults конвертирует domain модель в DTO
func FromDomainDefaults(d *domain.CompanyDefaults, stored bool) *DefaultsResponse {
	if d == nil {
		return nil
	}

	resp := &DefaultsResponse{
		CompanyID:         d.CompanyID,
		StartHour:         d.StartHour,
		EndHour:           d.EndHour,
		SlotDurationHours: d.SlotDurationHours,
		Capacity:          d.Capacity,
		Stored:            stored,
	}

	if stored {
		createdAt := d.CreatedAt
		updatedAt := d.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
