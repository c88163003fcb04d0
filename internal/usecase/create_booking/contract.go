package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// BookingCache интерфейс кэша будущих бронирований (сервис bookings)
type BookingCache interface {
	Upcoming(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	Invalidate()
}

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	HasOverlap(ctx context.Context, start, end time.Time) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// PaymentCapturer интерфейс списания предавторизованного платежа и его возврата
type PaymentCapturer interface {
	Capture(ctx context.Context, paymentID string, amount float64) error
	Refund(ctx context.Context, paymentID string) error
}

// Notifier интерфейс отправки подтверждения бронирования
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking) error
}

// Metrics интерфейс для метрик бронирований
type Metrics interface {
	IncBookingCreated(kind string)
	IncBookingRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
