package company_schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulerService/pkg/types"
)

func slot(id int64, gigID int64, start, end string, duration float64, reservations ...*domain.Reservation) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:            id,
		GigID:         gigID,
		StartTime:     types.TimeString(start),
		EndTime:       types.TimeString(end),
		DurationHours: duration,
		Capacity:      len(reservations) + 1,
		ReservedCount: len(reservations),
		Status:        domain.SlotStatusAvailable,
		Reservations:  reservations,
	}
}

func reserved(agentID int64) *domain.Reservation {
	return &domain.Reservation{AgentID: agentID, Status: domain.ReservationStatusReserved}
}

func testGigs() map[int64]*domain.Gig {
	return map[int64]*domain.Gig{
		1: {ID: 1, Name: "Morning promo", Color: "#ff0000"},
		2: {ID: 2, Name: "Evening promo", Color: "#00ff00"},
	}
}

func TestAggregateSchedule_PerAgentTotals(t *testing.T) {
	slots := []*domain.TimeSlot{
		slot(1, 1, "09:00", "10:00", 1.0, reserved(7)),
		slot(2, 1, "10:00", "11:30", 1.5, reserved(7), reserved(8)),
		slot(3, 2, "18:00", "20:00", 2.0, reserved(8)),
	}

	total, reps := aggregateSchedule(slots, testGigs())

	assert.Equal(t, 6.0, total)
	require.Len(t, reps, 2)

	assert.Equal(t, int64(7), reps[0].AgentID)
	assert.Equal(t, 2.5, reps[0].TotalHours)
	require.Len(t, reps[0].Slots, 2)
	assert.Equal(t, "Morning promo", reps[0].Slots[0].GigName)
	assert.Equal(t, "#ff0000", reps[0].Slots[0].GigColor)

	assert.Equal(t, int64(8), reps[1].AgentID)
	assert.Equal(t, 3.5, reps[1].TotalHours)
}

func TestAggregateSchedule_Deterministic(t *testing.T) {
	slots := []*domain.TimeSlot{
		slot(1, 1, "09:00", "10:00", 1.0, reserved(9), reserved(3), reserved(7)),
		slot(2, 2, "10:00", "11:00", 1.0, reserved(5)),
	}

	total, first := aggregateSchedule(slots, testGigs())
	for i := 0; i < 10; i++ {
		totalAgain, again := aggregateSchedule(slots, testGigs())
		assert.Equal(t, total, totalAgain)
		assert.Equal(t, first, again)
	}

	// Агенты отсортированы по ID независимо от порядка броней
	ids := make([]int64, 0, len(first))
	for _, rep := range first {
		ids = append(ids, rep.AgentID)
	}
	assert.Equal(t, []int64{3, 5, 7, 9}, ids)
}

func TestAggregateSchedule_SkipsCancelledAndEmptySlots(t *testing.T) {
	cancelled := slot(1, 1, "09:00", "10:00", 1.0, reserved(7))
	cancelled.Status = domain.SlotStatusCancelled

	empty := slot(2, 1, "10:00", "11:00", 1.0)

	total, reps := aggregateSchedule([]*domain.TimeSlot{cancelled, empty}, testGigs())

	assert.Zero(t, total)
	assert.Empty(t, reps)
}

func TestAggregateSchedule_LegacyRepIDFallback(t *testing.T) {
	legacy := &domain.TimeSlot{
		ID:            1,
		GigID:         1,
		StartTime:     types.TimeString("09:00"),
		EndTime:       types.TimeString("10:00"),
		DurationHours: 1.0,
		Capacity:      1,
		ReservedCount: 1,
		Status:        domain.SlotStatusFull,
		RepID:         ptr.Ptr(int64(42)),
		Notes:         ptr.Ptr("old row"),
	}

	total, reps := aggregateSchedule([]*domain.TimeSlot{legacy}, testGigs())

	assert.Equal(t, 1.0, total)
	require.Len(t, reps, 1)
	assert.Equal(t, int64(42), reps[0].AgentID)
	require.Len(t, reps[0].Slots, 1)
	assert.Equal(t, "old row", *reps[0].Slots[0].Notes)
}

func TestAggregateSchedule_ReservationNoteWins(t *testing.T) {
	withNotes := slot(1, 1, "09:00", "10:00", 1.0,
		&domain.Reservation{AgentID: 7, Status: domain.ReservationStatusReserved, Notes: ptr.Ptr("res note")},
		&domain.Reservation{AgentID: 8, Status: domain.ReservationStatusReserved},
	)
	withNotes.Notes = ptr.Ptr("slot note")

	_, reps := aggregateSchedule([]*domain.TimeSlot{withNotes}, testGigs())

	require.Len(t, reps, 2)
	assert.Equal(t, "res note", *reps[0].Slots[0].Notes)
	assert.Equal(t, "slot note", *reps[1].Slots[0].Notes)
}

func TestAggregateSchedule_SlotsSortedByStartTime(t *testing.T) {
	slots := []*domain.TimeSlot{
		slot(3, 1, "14:00", "15:00", 1.0, reserved(7)),
		slot(1, 1, "09:00", "10:00", 1.0, reserved(7)),
		slot(2, 2, "11:00", "12:00", 1.0, reserved(7)),
	}

	_, reps := aggregateSchedule(slots, testGigs())

	require.Len(t, reps, 1)
	starts := make([]string, 0, len(reps[0].Slots))
	for _, s := range reps[0].Slots {
		starts = append(starts, s.StartTime.String())
	}
	assert.Equal(t, []string{"09:00", "11:00", "14:00"}, starts)
}

func TestAggregateSchedule_UnknownGigLeavesNameEmpty(t *testing.T) {
	_, reps := aggregateSchedule([]*domain.TimeSlot{
		slot(1, 99, "09:00", "10:00", 1.0, reserved(7)),
	}, testGigs())

	require.Len(t, reps, 1)
	assert.Empty(t, reps[0].Slots[0].GigName)
}
