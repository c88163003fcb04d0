package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-LiftRental/internal/service/slotvalidator"
)

// Отказы проверки слота
var (
	ErrInvalidOrder         = slotvalidator.ErrInvalidOrder
	ErrOutsideBusinessHours = slotvalidator.ErrOutsideBusinessHours
	ErrClosedDay            = slotvalidator.ErrClosedDay
	ErrInThePast            = slotvalidator.ErrInThePast
	ErrOverlapping          = slotvalidator.ErrOverlapping
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStoreUnavailable возвращается, когда хранилище бронирований недоступно
	ErrStoreUnavailable = errors.New("create_booking: booking store unavailable")

	// ErrPaymentRequired возвращается, когда публичное бронирование пришло без платежа
	ErrPaymentRequired = errors.New("create_booking: payment required")

	// ErrPaymentFailed возвращается, когда списание платежа не удалось
	ErrPaymentFailed = errors.New("create_booking: payment failed")
)

// rejectionReason возвращает код отказа для метрик
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, ErrPaymentRequired):
		return "payment_required"
	case errors.Is(err, ErrPaymentFailed):
		return "payment_failed"
	default:
		return slotvalidator.Reason(err)
	}
}
