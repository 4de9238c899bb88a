package company_schedule

import (
	"sort"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
)

// aggregateSchedule сводит занятые слоты в часы по агентам
// Чистая функция: одинаковые входы всегда дают одинаковые итоги, никакой
// зависимости от порядка обхода map - результат сортируется по ID агента.
//
// Каждый занятый слот относит свою длительность каждому агенту с активной
// бронью на нём. Нормализация владения (reservations[] против легаси rep_id)
// выполняется в domain.TimeSlot.EffectiveAssignments.
func aggregateSchedule(slots []*domain.TimeSlot, gigsByID map[int64]*domain.Gig) (float64, []RepSchedule) {
	perAgent := make(map[int64]*RepSchedule)

	for _, slot := range slots {
		// Отменённые и пустые слоты в расписание не входят
		if slot.IsCancelled() || !slot.IsOccupied() {
			continue
		}

		for _, assignment := range slot.EffectiveAssignments() {
			entry, ok := perAgent[assignment.AgentID]
			if !ok {
				entry = &RepSchedule{AgentID: assignment.AgentID}
				perAgent[assignment.AgentID] = entry
			}

			scheduled := ScheduledSlot{
				SlotID:        slot.ID,
				GigID:         slot.GigID,
				StartTime:     slot.StartTime,
				EndTime:       slot.EndTime,
				DurationHours: assignment.DurationHours,
				Notes:         assignment.Notes,
			}
			if gig, ok := gigsByID[slot.GigID]; ok {
				scheduled.GigName = gig.Name
				scheduled.GigColor = gig.Color
			}

			entry.Slots = append(entry.Slots, scheduled)
			entry.TotalHours += assignment.DurationHours
		}
	}

	reps := make([]RepSchedule, 0, len(perAgent))
	total := 0.0
	for _, entry := range perAgent {
		sortSlotsByStart(entry.Slots)
		total += entry.TotalHours
		reps = append(reps, *entry)
	}

	sort.Slice(reps, func(i, j int) bool {
		return reps[i].AgentID < reps[j].AgentID
	})

	return total, reps
}

func sortSlotsByStart(slots []ScheduledSlot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].StartTime == slots[j].StartTime {
			return slots[i].SlotID < slots[j].SlotID
		}
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
}
