package month_overview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daySlot(d time.Time, capacity, reserved int, status domain.SlotStatus) *domain.TimeSlot {
	return &domain.TimeSlot{
		Date:          d,
		Capacity:      capacity,
		ReservedCount: reserved,
		Status:        status,
	}
}

func TestMondayOffset(t *testing.T) {
	tests := []struct {
		day  time.Weekday
		want int
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Wednesday, 2},
		{time.Thursday, 3},
		{time.Friday, 4},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mondayOffset(tt.day), tt.day.String())
	}
}

func TestGridBounds_MonthStartingOnSunday(t *testing.T) {
	// Март 2026 начинается с воскресенья: сетка захватывает почти всю
	// последнюю неделю февраля
	start, end := gridBounds(date(2026, 3, 1))

	assert.Equal(t, date(2026, 2, 23), start)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, date(2026, 4, 5), end)
	assert.Equal(t, time.Sunday, end.Weekday())
}

func TestBuildMonthGrid_WeekShape(t *testing.T) {
	weeks := buildMonthGrid(date(2026, 3, 1), nil, nil)

	require.Len(t, weeks, 6)
	for _, week := range weeks {
		require.Len(t, week, daysPerWeek)
		assert.Equal(t, time.Monday, week[0].Date.Weekday())
		assert.Equal(t, time.Sunday, week[6].Date.Weekday())
	}
}

func TestBuildMonthGrid_LeapFebruary(t *testing.T) {
	weeks := buildMonthGrid(date(2028, 2, 1), nil, nil)

	require.Len(t, weeks, 5)
	assert.Equal(t, date(2028, 1, 31), weeks[0][0].Date)

	lastWeek := weeks[len(weeks)-1]
	assert.Equal(t, date(2028, 2, 29), lastWeek[1].Date)
	assert.True(t, lastWeek[1].InMonth)
	assert.Equal(t, date(2028, 3, 1), lastWeek[2].Date)
	assert.False(t, lastWeek[2].InMonth)
}

func TestBuildMonthGrid_InMonthFlags(t *testing.T) {
	weeks := buildMonthGrid(date(2026, 3, 1), nil, nil)

	// Хвост февраля в сетке, но вне месяца
	assert.Equal(t, date(2026, 2, 23), weeks[0][0].Date)
	assert.False(t, weeks[0][0].InMonth)

	// 1 марта - воскресенье первой недели
	assert.Equal(t, date(2026, 3, 1), weeks[0][6].Date)
	assert.True(t, weeks[0][6].InMonth)

	// Хвост апреля вне месяца
	last := weeks[len(weeks)-1]
	assert.Equal(t, date(2026, 4, 5), last[6].Date)
	assert.False(t, last[6].InMonth)
}

func TestBuildMonthGrid_CountsPerDay(t *testing.T) {
	target := date(2026, 3, 2)
	slots := []*domain.TimeSlot{
		// Частично занят: даёт и reserved, и open
		daySlot(target, 2, 1, domain.SlotStatusAvailable),
		// Полностью занят: только reserved
		daySlot(target, 1, 1, domain.SlotStatusFull),
		// Свободен: только open
		daySlot(target, 1, 0, domain.SlotStatusAvailable),
		// Отменён: не учитывается вовсе
		daySlot(target, 1, 1, domain.SlotStatusCancelled),
	}

	weeks := buildMonthGrid(date(2026, 3, 1), nil, slots)

	// 2 марта - понедельник второй недели
	cell := weeks[1][0]
	require.Equal(t, target, cell.Date)
	assert.Equal(t, 2, cell.ReservedSlots)
	assert.Equal(t, 2, cell.OpenSlots)

	// Соседний день остаётся пустым
	assert.Zero(t, weeks[1][1].ReservedSlots)
	assert.Zero(t, weeks[1][1].OpenSlots)
}

func TestBuildMonthGrid_SelectedDay(t *testing.T) {
	selected := date(2026, 3, 2)
	weeks := buildMonthGrid(date(2026, 3, 1), &selected, nil)

	marked := 0
	for _, week := range weeks {
		for _, cell := range week {
			if cell.Selected {
				marked++
				assert.Equal(t, selected, cell.Date)
			}
		}
	}
	assert.Equal(t, 1, marked)
}
