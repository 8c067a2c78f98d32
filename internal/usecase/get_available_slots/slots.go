package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/pkg/timegrid"
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// generateSlots строит свободные времена начала внутри рабочего интервала.
// Кандидаты идут с шагом domain.SlotStepMinutes, пока кандидат + domain.SlotDurationMinutes <= конца интервала.
// Кандидат отбрасывается, если пересекается хотя бы с одним занятым интервалом.
func generateSlots(interval domain.WorkingInterval, busy []busyInterval) ([]types.TimeString, error) {
	start, err := timegrid.ToMinutes(interval.Start.String())
	if err != nil {
		return nil, fmt.Errorf("interval start %q: %w", interval.Start, err)
	}

	end, err := timegrid.ToMinutes(interval.End.String())
	if err != nil {
		return nil, fmt.Errorf("interval end %q: %w", interval.End, err)
	}

	slots := make([]types.TimeString, 0)
	if end <= start {
		return slots, nil
	}

	for cand := start; cand+domain.SlotDurationMinutes <= end; cand += domain.SlotStepMinutes {
		if isFree(cand, cand+domain.SlotDurationMinutes, busy) {
			slots = append(slots, types.FromMinutes(cand))
		}
	}

	return slots, nil
}

// isFree проверяет, что [start, end) не пересекается ни с одним занятым интервалом.
// Соседство встык пересечением не считается:
// - слот 10:30-11:00, запись 10:00-10:30 → свободен
// - слот 10:00-10:30, запись 10:15-10:45 → занят
func isFree(start, end int, busy []busyInterval) bool {
	for _, b := range busy {
		if !(end <= b.start || start >= b.end) {
			return false
		}
	}
	return true
}

// busyFromAppointments переводит занимающие время записи в интервалы в минутах.
// Отменённые записи пропускаются.
func busyFromAppointments(appts []*domain.Appointment) ([]busyInterval, error) {
	busy := make([]busyInterval, 0, len(appts))

	for _, appt := range appts {
		if !appt.IsOccupying() {
			continue
		}

		start, err := appt.StartHM.Minutes()
		if err != nil {
			return nil, fmt.Errorf("appointment %d start %q: %w", appt.ID, appt.StartHM, err)
		}
		end, err := appt.EndHM.Minutes()
		if err != nil {
			return nil, fmt.Errorf("appointment %d end %q: %w", appt.ID, appt.EndHM, err)
		}

		busy = append(busy, busyInterval{start: start, end: end})
	}

	return busy, nil
}
