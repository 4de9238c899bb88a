package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name          string
		reservedCount int
		capacity      int
		cancelled     bool
		want          SlotStatus
	}{
		{"empty slot is available", 0, 3, false, SlotStatusAvailable},
		{"partially reserved is available", 2, 3, false, SlotStatusAvailable},
		{"at capacity is full", 3, 3, false, SlotStatusFull},
		{"single capacity reserved is full", 1, 1, false, SlotStatusFull},
		{"cancelled wins over available", 0, 3, true, SlotStatusCancelled},
		{"cancelled wins over full", 3, 3, true, SlotStatusCancelled},
		{"zero capacity stays available", 0, 0, false, SlotStatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.reservedCount, tt.capacity, tt.cancelled))
		})
	}
}

func TestTimeSlot_CapacityHelpers(t *testing.T) {
	slot := &TimeSlot{Capacity: 3, ReservedCount: 2, Status: SlotStatusAvailable}

	assert.True(t, slot.HasCapacity())
	assert.True(t, slot.IsOccupied())
	assert.False(t, slot.IsFull())
	assert.InDelta(t, 66.67, slot.OccupancyRate(), 0.01)

	slot.ReservedCount = 3
	assert.True(t, slot.IsFull())
	assert.False(t, slot.HasCapacity())

	cancelled := &TimeSlot{Capacity: 3, ReservedCount: 0, Status: SlotStatusCancelled}
	assert.False(t, cancelled.HasCapacity())
}

func TestTimeSlot_EffectiveAssignments_Reservations(t *testing.T) {
	slotNote := ptr.Ptr("slot note")
	resNote := ptr.Ptr("reservation note")

	slot := &TimeSlot{
		DurationHours: 1.5,
		ReservedCount: 2,
		Capacity:      3,
		Notes:         slotNote,
		Reservations: []*Reservation{
			{AgentID: 7, Status: ReservationStatusReserved, Notes: resNote},
			{AgentID: 8, Status: ReservationStatusReserved, Notes: nil},
			{AgentID: 9, Status: ReservationStatusCancelled, Notes: nil},
		},
	}

	assignments := slot.EffectiveAssignments()
	assert.Len(t, assignments, 2)

	// Заметка брони приоритетнее заметки слота
	assert.Equal(t, int64(7), assignments[0].AgentID)
	assert.Equal(t, resNote, assignments[0].Notes)
	assert.Equal(t, 1.5, assignments[0].DurationHours)

	// При отсутствии заметки брони наследуется заметка слота
	assert.Equal(t, int64(8), assignments[1].AgentID)
	assert.Equal(t, slotNote, assignments[1].Notes)
}

func TestTimeSlot_EffectiveAssignments_LegacyRepID(t *testing.T) {
	slotNote := ptr.Ptr("note")

	slot := &TimeSlot{
		DurationHours: 2.0,
		ReservedCount: 1,
		Capacity:      1,
		RepID:         ptr.Ptr(int64(42)),
		Notes:         slotNote,
	}

	assignments := slot.EffectiveAssignments()
	assert.Len(t, assignments, 1)
	assert.Equal(t, int64(42), assignments[0].AgentID)
	assert.Equal(t, 2.0, assignments[0].DurationHours)
	assert.Equal(t, slotNote, assignments[0].Notes)
}

func TestTimeSlot_EffectiveAssignments_LegacyRepIDWithoutOccupancy(t *testing.T) {
	// rep_id без занятых мест - устаревший указатель, назначений нет
	slot := &TimeSlot{
		DurationHours: 1.0,
		ReservedCount: 0,
		Capacity:      1,
		RepID:         ptr.Ptr(int64(42)),
	}

	assert.Empty(t, slot.EffectiveAssignments())
}

func TestTimeSlot_EffectiveAssignments_ReservationsWinOverLegacy(t *testing.T) {
	// При наличии обоих представлений список броней имеет приоритет
	slot := &TimeSlot{
		DurationHours: 1.0,
		ReservedCount: 1,
		Capacity:      2,
		RepID:         ptr.Ptr(int64(42)),
		Reservations: []*Reservation{
			{AgentID: 7, Status: ReservationStatusReserved},
		},
	}

	assignments := slot.EffectiveAssignments()
	assert.Len(t, assignments, 1)
	assert.Equal(t, int64(7), assignments[0].AgentID)
}
