package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
	"github.com/m04kA/SMC-LiftRental/internal/service/slotvalidator"
)

// dayStart возвращает полночь дня date в зоне политики
func dayStart(date time.Time, policy domain.Policy) time.Time {
	local := policy.Local(date)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// generateTimeSlots генерирует слоты дня с шагом политики от открытия до закрытия
// Последний слот заканчивается не позже часа закрытия
func generateTimeSlots(day time.Time, policy domain.Policy) []domain.AvailableSlot {
	step := policy.Granularity()
	open := time.Date(day.Year(), day.Month(), day.Day(), policy.OpenHour, 0, 0, 0, day.Location())
	closing := time.Date(day.Year(), day.Month(), day.Day(), policy.CloseHour, 0, 0, 0, day.Location())

	slots := make([]domain.AvailableSlot, 0)
	for start := open; !start.Add(step).After(closing); start = start.Add(step) {
		slots = append(slots, domain.AvailableSlot{
			Start:     start,
			End:       start.Add(step),
			Available: true,
		})
	}

	return slots
}

// markAvailability помечает занятые слоты и (в публичном потоке) уже начавшиеся
func markAvailability(slots []domain.AvailableSlot, bookings []*domain.Booking, now time.Time, flow domain.Flow) {
	for i := range slots {
		if flow != domain.FlowAdmin && slots[i].Start.Before(now) {
			slots[i].Available = false
			continue
		}
		if slotvalidator.FindOverlap(slots[i].Interval(), bookings) != nil {
			slots[i].Available = false
		}
	}
}
