package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "reserved"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents one agent's claim on one slot.
// Date, StartTime, EndTime and DurationHours are copied from the parent slot
// at creation time so reporting does not need to join back to the slot.
type Reservation struct {
	ID            int64
	SlotID        int64
	AgentID       int64
	GigID         int64
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours float64
	Status        ReservationStatus
	Notes         *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still holds a unit of capacity
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusReserved
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationStatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == ReservationStatusReserved
}

// ReservationsFilter filters reservation listings
type ReservationsFilter struct {
	AgentID *int64
	GigID   *int64
	SlotID  *int64
	Status  *ReservationStatus
}
