package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

// SlotStatus represents the status of a time slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusFull      SlotStatus = "full"
	SlotStatusCancelled SlotStatus = "cancelled"
)

// TimeSlot represents one bookable interval for a gig on a calendar date.
// ReservedCount never exceeds Capacity; Status is a cached projection of
// ReservedCount/Capacity and must always match DeriveStatus.
type TimeSlot struct {
	ID            int64
	GigID         int64
	CompanyID     int64 // denormalized from the gig for reporting
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours float64
	Capacity      int
	ReservedCount int
	Status        SlotStatus
	Notes         *string

	// RepID is the legacy single-owner assignment, kept for rows created
	// before multi-agent reservations. New code writes Reservations instead.
	RepID *int64

	// Reservations holds the active reservations for this slot.
	// Populated on demand (SlotsFilter.WithReservations).
	Reservations []*Reservation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeriveStatus computes the slot status from occupancy.
// Cancelled is terminal and wins over everything else.
func DeriveStatus(reservedCount, capacity int, cancelled bool) SlotStatus {
	if cancelled {
		return SlotStatusCancelled
	}
	if capacity > 0 && reservedCount >= capacity {
		return SlotStatusFull
	}
	return SlotStatusAvailable
}

// IsCancelled returns true if the slot has been cancelled
func (s *TimeSlot) IsCancelled() bool {
	return s.Status == SlotStatusCancelled
}

// IsFull returns true if the slot has no free spots left
func (s *TimeSlot) IsFull() bool {
	return s.ReservedCount >= s.Capacity
}

// HasCapacity returns true if the slot can accept another reservation
func (s *TimeSlot) HasCapacity() bool {
	return !s.IsCancelled() && s.ReservedCount < s.Capacity
}

// IsOccupied returns true if at least one reservation is held on the slot
func (s *TimeSlot) IsOccupied() bool {
	return s.ReservedCount > 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *TimeSlot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.ReservedCount) / float64(s.Capacity) * 100
}

// Assignment is the normalized (agent, duration, notes) view of one claim on
// a slot, independent of whether it came from Reservations or the legacy RepID.
type Assignment struct {
	AgentID       int64
	DurationHours float64
	Notes         *string
}

// EffectiveAssignments normalizes slot ownership for aggregation.
// The embedded reservation list is preferred when present; rows still carrying
// only the legacy RepID fall back to a single assignment with slot-level notes.
// A reservation-specific note wins over the slot-level note.
func (s *TimeSlot) EffectiveAssignments() []Assignment {
	if len(s.Reservations) > 0 {
		assignments := make([]Assignment, 0, len(s.Reservations))
		for _, res := range s.Reservations {
			if !res.IsActive() {
				continue
			}
			notes := res.Notes
			if notes == nil {
				notes = s.Notes
			}
			assignments = append(assignments, Assignment{
				AgentID:       res.AgentID,
				DurationHours: s.DurationHours,
				Notes:         notes,
			})
		}
		return assignments
	}

	if s.RepID != nil && s.ReservedCount > 0 {
		return []Assignment{{
			AgentID:       *s.RepID,
			DurationHours: s.DurationHours,
			Notes:         s.Notes,
		}}
	}

	return nil
}

// SlotsFilter filters slot listings
type SlotsFilter struct {
	GigID            *int64
	CompanyID        *int64
	Date             *time.Time // exact calendar date
	DateFrom         *time.Time // inclusive range start
	DateTo           *time.Time // inclusive range end
	Status           *SlotStatus
	WithReservations bool // hydrate TimeSlot.Reservations
}
