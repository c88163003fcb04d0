package slotvalidator

import "errors"

var (
	// ErrInvalidOrder возвращается, когда начало интервала не раньше его конца
	ErrInvalidOrder = errors.New("slot: start must be before end")

	// ErrOutsideBusinessHours возвращается, когда интервал выходит за рабочие часы политики
	ErrOutsideBusinessHours = errors.New("slot: outside business hours")

	// ErrClosedDay возвращается, когда начало или конец приходится на выходной день
	ErrClosedDay = errors.New("slot: closed on this weekday")

	// ErrInThePast возвращается, когда начало интервала уже прошло (только публичный поток)
	ErrInThePast = errors.New("slot: start is in the past")

	// ErrOverlapping возвращается, когда интервал пересекается с существующим бронированием
	ErrOverlapping = errors.New("slot: overlaps an existing booking")
)

// Reason возвращает короткий код отказа для метрик и логов
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidOrder):
		return "invalid_order"
	case errors.Is(err, ErrOutsideBusinessHours):
		return "outside_business_hours"
	case errors.Is(err, ErrClosedDay):
		return "closed_day"
	case errors.Is(err, ErrInThePast):
		return "in_the_past"
	case errors.Is(err, ErrOverlapping):
		return "overlapping"
	default:
		return "other"
	}
}
