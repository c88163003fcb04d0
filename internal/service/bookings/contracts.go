package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	ListFrom(ctx context.Context, from time.Time) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
