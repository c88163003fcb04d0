package create_booking

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
	createBooking "github.com/m04kA/SMC-LiftRental/internal/usecase/create_booking"
)

var errInvalidTime = errors.New("startTime and endTime must be RFC 3339")

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string  `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Kind      string  `json:"kind"`
	Name      string  `json:"name,omitempty"`
	Email     string  `json:"email,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Hours     int     `json:"hours"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// В админском потоке запрос без контактных полей создает блокировку времени
func (r *CreateBookingRequest) ToUseCaseRequest(flow domain.Flow) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(r.StartTime))
	if err != nil {
		return nil, errInvalidTime
	}
	end, err := time.Parse(time.RFC3339, strings.TrimSpace(r.EndTime))
	if err != nil {
		return nil, errInvalidTime
	}

	req := &createBooking.Request{
		Interval:  domain.Interval{Start: start, End: end},
		Flow:      flow,
		PaymentID: strings.TrimSpace(r.PaymentID),
	}

	if flow == domain.FlowPublic || r.hasContact() {
		req.Contact = &domain.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone}
	}

	return req, nil
}

func (r *CreateBookingRequest) hasContact() bool {
	return strings.TrimSpace(r.Name) != "" || strings.TrimSpace(r.Email) != "" || strings.TrimSpace(r.Phone) != ""
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:        resp.ID,
		StartTime: resp.Start.Format(time.RFC3339),
		EndTime:   resp.End.Format(time.RFC3339),
		Kind:      string(resp.Kind),
		Hours:     resp.Hours,
		Price:     resp.Price,
	}
	if resp.Contact != nil {
		out.Name = resp.Contact.Name
		out.Email = resp.Contact.Email
		out.Phone = resp.Contact.Phone
	}
	if !resp.CreatedAt.IsZero() {
		out.CreatedAt = resp.CreatedAt.Format(time.RFC3339)
	}
	return out
}
