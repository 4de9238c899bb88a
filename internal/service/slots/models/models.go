package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid slot status")
)

// Request модели

// ListSlotsRequest запрос на получение слотов с фильтрацией
type ListSlotsRequest struct {
	GigID            *int64     `json:"gigId,omitempty"`
	CompanyID        *int64     `json:"companyId,omitempty"`
	Date             *time.Time `json:"date,omitempty"`
	DateFrom         *time.Time `json:"dateFrom,omitempty"`
	DateTo           *time.Time `json:"dateTo,omitempty"`
	Status           *string    `json:"status,omitempty"`
	WithReservations bool       `json:"withReservations,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() (domain.SlotsFilter, error) {
	filter := domain.SlotsFilter{
		GigID:            r.GigID,
		CompanyID:        r.CompanyID,
		Date:             r.Date,
		DateFrom:         r.DateFrom,
		DateTo:           r.DateTo,
		WithReservations: r.WithReservations,
	}

	if r.Status != nil {
		status, err := ToDomainSlotStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ListReservationsRequest запрос на получение броней с фильтрацией
type ListReservationsRequest struct {
	AgentID *int64  `json:"agentId,omitempty"`
	GigID   *int64  `json:"gigId,omitempty"`
	SlotID  *int64  `json:"slotId,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		AgentID: r.AgentID,
		GigID:   r.GigID,
		SlotID:  r.SlotID,
	}

	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if status != domain.ReservationStatusReserved && status != domain.ReservationStatusCancelled {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID            int64   `json:"id"`
	GigID         int64   `json:"gigId"`
	CompanyID     int64   `json:"companyId"`
	Date          string  `json:"date"`      // "2026-03-15"
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`   // "11:00"
	DurationHours float64 `json:"durationHours"`
	Capacity      int     `json:"capacity"`
	ReservedCount int     `json:"reservedCount"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	// RepID легаси-поле одиночного назначения, отдаётся только для старых строк
	RepID *int64 `json:"repId,omitempty"`

	Reservations []ReservationResponse `json:"reservations,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID            int64   `json:"id"`
	SlotID        int64   `json:"slotId"`
	AgentID       int64   `json:"agentId"`
	GigID         int64   `json:"gigId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours float64 `json:"durationHours"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	resp := &SlotResponse{
		ID:            s.ID,
		GigID:         s.GigID,
		CompanyID:     s.CompanyID,
		Date:          s.Date.Format(domain.DateFormat),
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		DurationHours: s.DurationHours,
		Capacity:      s.Capacity,
		ReservedCount: s.ReservedCount,
		Status:        string(s.Status),
		Notes:         s.Notes,
		RepID:         s.RepID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	for _, res := range s.Reservations {
		if resResp := FromDomainReservation(res); resResp != nil {
			resp.Reservations = append(resp.Reservations, *resResp)
		}
	}

	return resp
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		if slotResp := FromDomainSlot(slot); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:            r.ID,
		SlotID:        r.SlotID,
		AgentID:       r.AgentID,
		GigID:         r.GigID,
		Date:          r.Date.Format(domain.DateFormat),
		StartTime:     r.StartTime.String(),
		EndTime:       r.EndTime.String(),
		DurationHours: r.DurationHours,
		Status:        string(r.Status),
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, res := range reservations {
		if resResp := FromDomainReservation(res); resResp != nil {
			resp.Reservations = append(resp.Reservations, *resResp)
		}
	}

	return resp
}

// ToDomainSlotStatus конвертирует строку в domain.SlotStatus с валидацией
func ToDomainSlotStatus(status string) (domain.SlotStatus, error) {
	s := domain.SlotStatus(status)

	validStatuses := []domain.SlotStatus{
		domain.SlotStatusAvailable,
		domain.SlotStatusFull,
		domain.SlotStatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
