package list_bookings

import (
	"time"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// View определяет, какие поля бронирования видны клиенту
type View int

const (
	// PublicView только время и вид бронирования
	PublicView View = iota
	// AdminView все поля, включая контакт и цену
	AdminView
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string   `json:"id,omitempty"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Kind      string   `json:"kind"`
	Name      string   `json:"name,omitempty"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBookings конвертирует бронирования в HTTP response с учетом вида
func FromDomainBookings(bookings []*domain.Booking, view View) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		item := BookingResponse{
			StartTime: b.Start.Format(time.RFC3339),
			EndTime:   b.End.Format(time.RFC3339),
			Kind:      string(b.Kind),
		}

		if view == AdminView {
			price := b.Price
			item.ID = b.ID
			item.Price = &price
			if b.Contact != nil {
				item.Name = b.Contact.Name
				item.Email = b.Contact.Email
				item.Phone = b.Contact.Phone
			}
			if !b.CreatedAt.IsZero() {
				item.CreatedAt = b.CreatedAt.Format(time.RFC3339)
			}
		}

		items = append(items, item)
	}

	return &BookingListResponse{Bookings: items, Total: len(items)}
}
