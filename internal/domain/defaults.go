package domain

import "time"

// CompanyDefaults holds per-company slot generation defaults.
// Used by the generator when a request omits hour window or capacity.
type CompanyDefaults struct {
	CompanyID         int64
	StartHour         int
	EndHour           int
	SlotDurationHours float64
	Capacity          int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FallbackDefaults returns the built-in generation defaults used when a
// company has no stored configuration
func FallbackDefaults(companyID int64) *CompanyDefaults {
	return &CompanyDefaults{
		CompanyID:         companyID,
		StartHour:         DefaultStartHour,
		EndHour:           DefaultEndHour,
		SlotDurationHours: DefaultSlotDurationHours,
		Capacity:          DefaultCapacity,
	}
}
