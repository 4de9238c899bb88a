package domain

import "time"

// Rep represents a representative (agent) who can hold reservations.
// Canonical rep data is owned by RepService; this mirrors its payload for
// aggregation and display.
type Rep struct {
	ID               int64
	Name             string
	Email            string
	Avatar           *string
	Specialties      []string
	PerformanceScore *float64
	PreferredHours   PreferredHours
	AttendanceScore  float64
	AttendanceHistory []AttendanceRecord
}

// PreferredHours is the daily hour window a rep prefers to work (24h clock)
type PreferredHours struct {
	Start int
	End   int
}

// AttendanceRecord is one attendance mark for a past slot
type AttendanceRecord struct {
	Date     time.Time
	SlotID   int64
	Attended bool
	Reason   *string
}
