package list_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

type BookingService interface {
	List(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
