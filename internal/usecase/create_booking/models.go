package create_booking

import (
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Interval  domain.Interval
	Contact   *domain.Contact // nil в админском потоке = блокировка времени
	Flow      domain.Flow
	PaymentID string // ID PaymentIntent, обязателен при включенных платежах в публичном потоке
}

// Options параметры use case
type Options struct {
	PublicPolicy domain.Policy
	AdminPolicy  domain.Policy
	HourlyRate   float64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	Start     time.Time
	End       time.Time
	Kind      domain.Kind
	Contact   *domain.Contact
	Hours     int
	Price     float64
	CreatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		Start:     b.Start,
		End:       b.End,
		Kind:      b.Kind,
		Contact:   b.Contact,
		Hours:     domain.BillableHours(b.Interval().Duration()),
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
	}
}
