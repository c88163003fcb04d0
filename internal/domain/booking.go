package domain

import (
	"strings"
	"time"
)

// Kind distinguishes paying reservations from operator-imposed holds
type Kind string

const (
	KindReservation        Kind = "reservation"
	KindAdministrativeHold Kind = "administrative_hold"
)

// Contact holds renter details of a reservation
type Contact struct {
	Name  string
	Email string
	Phone string
}

// IsComplete returns true if every contact field is filled
func (c *Contact) IsComplete() bool {
	return c != nil &&
		strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Phone) != ""
}

// Booking represents a confirmed occupation of the lift
// A reservation carries a Contact; an administrative hold has none and costs nothing.
type Booking struct {
	ID      string // assigned by the store
	Start   time.Time
	End     time.Time
	Kind    Kind
	Contact *Contact
	Price   float64

	CreatedAt time.Time
}

// NewReservation builds a paying booking for the given interval
func NewReservation(interval Interval, contact Contact, price float64) *Booking {
	return &Booking{
		Start:   interval.Start,
		End:     interval.End,
		Kind:    KindReservation,
		Contact: &contact,
		Price:   price,
	}
}

// NewAdministrativeHold builds an operator hold for the given interval
func NewAdministrativeHold(interval Interval) *Booking {
	return &Booking{
		Start: interval.Start,
		End:   interval.End,
		Kind:  KindAdministrativeHold,
	}
}

// IsAdministrativeHold returns true if the booking blocks time without a customer
func (b *Booking) IsAdministrativeHold() bool {
	return b.Kind == KindAdministrativeHold
}

// Interval returns the time range occupied by the booking
func (b *Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}
