package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridParams(startHour, endHour int, duration float64) *generationParams {
	return &generationParams{
		StartDate:     date(2026, 3, 2),
		EndDate:       date(2026, 3, 2),
		StartHour:     startHour,
		EndHour:       endHour,
		DurationHours: duration,
		Capacity:      1,
	}
}

func TestBuildSlotGrid_HourlySteps(t *testing.T) {
	slots, err := buildSlotGrid(1, 10, gridParams(9, 12, 1.0))
	require.NoError(t, err)

	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "10:00", slots[0].EndTime.String())
	assert.Equal(t, "11:00", slots[2].StartTime.String())
	assert.Equal(t, "12:00", slots[2].EndTime.String())
}

func TestBuildSlotGrid_FractionalDuration(t *testing.T) {
	slots, err := buildSlotGrid(1, 10, gridParams(9, 11, 0.5))
	require.NoError(t, err)

	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "09:30", slots[0].EndTime.String())
	assert.Equal(t, "10:30", slots[3].StartTime.String())
	assert.Equal(t, "11:00", slots[3].EndTime.String())
}

func TestBuildSlotGrid_LastSlotMustFitWindow(t *testing.T) {
	// 1.5-часовые шаги в окне 9-12: 09:00-10:30 и 10:30-12:00, третий не влезает
	slots, err := buildSlotGrid(1, 10, gridParams(9, 12, 1.5))
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, "10:30", slots[1].StartTime.String())
	assert.Equal(t, "12:00", slots[1].EndTime.String())
}

func TestBuildSlotGrid_MultipleDates(t *testing.T) {
	params := gridParams(9, 11, 1.0)
	params.EndDate = date(2026, 3, 4)

	slots, err := buildSlotGrid(1, 10, params)
	require.NoError(t, err)

	// 3 даты x 2 шага
	require.Len(t, slots, 6)
	assert.Equal(t, date(2026, 3, 2), slots[0].Date)
	assert.Equal(t, date(2026, 3, 4), slots[5].Date)
}

func TestBuildSlotGrid_IgnoresTimeOfDayInDates(t *testing.T) {
	params := gridParams(9, 10, 1.0)
	params.StartDate = time.Date(2026, 3, 2, 23, 50, 0, 0, time.UTC)
	params.EndDate = time.Date(2026, 3, 3, 0, 10, 0, 0, time.UTC)

	slots, err := buildSlotGrid(1, 10, params)
	require.NoError(t, err)

	// Время суток в границах диапазона не влияет на набор дат
	require.Len(t, slots, 2)
}

func TestBuildSlotGrid_WindowTooSmall(t *testing.T) {
	slots, err := buildSlotGrid(1, 10, gridParams(9, 10, 2.0))
	require.NoError(t, err)
	assert.Empty(t, slots)
}
