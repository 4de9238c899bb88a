package domain

// Default generation parameters
const (
	DefaultStartHour         = 9
	DefaultEndHour           = 18
	DefaultCapacity          = 1
	DefaultSlotDurationHours = 1.0
)

// Business validation constants
const (
	MinCapacity          = 1
	MaxCapacity          = 100
	MinSlotDurationHours = 0.25 // 15 minutes
	MaxSlotDurationHours = 12.0
	MaxNotesLength       = 500
	MinutesPerHour       = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
