package domain

import "strings"

// RecordContact returns the contact columns stored for a booking.
// Holds are written with the sentinel values the record store has always used.
func RecordContact(b *Booking) (name, email, phone string) {
	if b.IsAdministrativeHold() || b.Contact == nil {
		return HoldRecordName, HoldRecordEmail, HoldRecordPhone
	}
	return b.Contact.Name, b.Contact.Email, b.Contact.Phone
}

// KindFromRecord restores the booking variant from stored columns.
// An explicit kind column wins. Records written without it are holds only when
// all three contact columns carry the sentinel values.
func KindFromRecord(kind, name, email, phone string) (Kind, *Contact) {
	switch Kind(kind) {
	case KindAdministrativeHold:
		return KindAdministrativeHold, nil
	case KindReservation:
		return KindReservation, &Contact{Name: name, Email: email, Phone: phone}
	}

	if name == HoldRecordName && email == HoldRecordEmail && phone == HoldRecordPhone {
		return KindAdministrativeHold, nil
	}
	return KindReservation, &Contact{Name: name, Email: email, Phone: phone}
}

// IsReservedName reports whether a renter name collides with the hold sentinel
func IsReservedName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), HoldRecordName)
}
