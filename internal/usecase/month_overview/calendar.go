package month_overview

import (
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

const daysPerWeek = 7

// monthBounds возвращает первое число месяца и первое число следующего
func monthBounds(month time.Time) (time.Time, time.Time) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, 0)
}

// gridBounds возвращает границы видимой сетки: от понедельника недели с первым
// числом месяца до воскресенья недели с последним числом включительно
func gridBounds(month time.Time) (time.Time, time.Time) {
	first, next := monthBounds(month)

	start := first.AddDate(0, 0, -mondayOffset(first.Weekday()))
	last := next.AddDate(0, 0, -1)
	end := last.AddDate(0, 0, daysPerWeek-1-mondayOffset(last.Weekday()))

	return start, end
}

// mondayOffset количество дней от понедельника: Mon=0 ... Sun=6
func mondayOffset(day time.Weekday) int {
	return (int(day) + 6) % daysPerWeek
}

type dayCounts struct {
	reserved int
	open     int
}

// buildMonthGrid строит сетку месяца недельными строками
// Отменённые слоты в счётчики не входят; один слот может одновременно дать и
// reserved (есть активная бронь), и open (остались свободные места)
func buildMonthGrid(month time.Time, selected *time.Time, slots []*domain.TimeSlot) [][]DayCell {
	first, next := monthBounds(month)
	start, end := gridBounds(month)

	counts := make(map[string]*dayCounts)
	for _, slot := range slots {
		if slot.IsCancelled() {
			continue
		}
		key := slot.Date.Format(domain.DateFormat)
		c, ok := counts[key]
		if !ok {
			c = &dayCounts{}
			counts[key] = c
		}
		if slot.IsOccupied() {
			c.reserved++
		}
		if slot.HasCapacity() {
			c.open++
		}
	}

	var weeks [][]DayCell
	for day := start; !day.After(end); day = day.AddDate(0, 0, daysPerWeek) {
		week := make([]DayCell, 0, daysPerWeek)
		for i := 0; i < daysPerWeek; i++ {
			date := day.AddDate(0, 0, i)
			cell := DayCell{
				Date:    date,
				InMonth: !date.Before(first) && date.Before(next),
			}
			if c, ok := counts[date.Format(domain.DateFormat)]; ok {
				cell.ReservedSlots = c.reserved
				cell.OpenSlots = c.open
			}
			if selected != nil && sameDay(date, *selected) {
				cell.Selected = true
			}
			week = append(week, cell)
		}
		weeks = append(weeks, week)
	}

	return weeks
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
