package slotvalidator

import (
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// Validate проверяет, можно ли забронировать интервал
// Проверки идут от дешёвых к дорогим, первая неудачная определяет ответ:
// порядок → рабочие часы → выходной → прошлое (только публичный поток) → пересечения
func Validate(
	candidate domain.Interval,
	existing []*domain.Booking,
	policy domain.Policy,
	now time.Time,
	flow domain.Flow,
) error {
	if !candidate.IsOrdered() {
		return ErrInvalidOrder
	}

	if !withinBusinessHours(candidate, policy) {
		return ErrOutsideBusinessHours
	}

	if policy.IsClosedOn(candidate.Start) || policy.IsClosedOn(candidate.End) {
		return ErrClosedDay
	}

	if flow != domain.FlowAdmin && candidate.Start.Before(now) {
		return ErrInThePast
	}

	if FindOverlap(candidate, existing) != nil {
		return ErrOverlapping
	}

	return nil
}

// FindOverlap возвращает первое бронирование, пересекающееся с интервалом, или nil
func FindOverlap(candidate domain.Interval, existing []*domain.Booking) *domain.Booking {
	for _, b := range existing {
		if b == nil {
			continue
		}
		if domain.Overlaps(candidate, b.Interval()) {
			return b
		}
	}
	return nil
}

// withinBusinessHours сравнивает часы начала и конца с границами политики
// Конец сравнивается по часу: интервал, заканчивающийся ровно в час закрытия, допустим.
// Интервал должен лежать в одном дне; полночь следующего дня допустима только при закрытии в 24.
func withinBusinessHours(candidate domain.Interval, policy domain.Policy) bool {
	start := policy.Local(candidate.Start)
	end := policy.Local(candidate.End)

	if start.Hour() < policy.OpenHour {
		return false
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy == ey && sm == em && sd == ed {
		return end.Hour() <= policy.CloseHour
	}

	midnight := time.Date(sy, sm, sd+1, 0, 0, 0, 0, start.Location())
	return policy.CloseHour >= 24 && end.Equal(midnight)
}
