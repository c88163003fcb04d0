package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Interval.Start.IsZero() || req.Interval.End.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	switch req.Flow {
	case domain.FlowPublic:
		if req.Contact == nil {
			return fmt.Errorf("%w: contact is required", ErrInvalidInput)
		}
	case domain.FlowAdmin:
		// без контакта создается блокировка времени
		if req.Contact == nil {
			return nil
		}
	default:
		return fmt.Errorf("%w: unknown flow %q", ErrInvalidInput, req.Flow)
	}

	return validateContact(req.Contact)
}

// normalizeContact обрезает пробелы во всех полях контакта
func normalizeContact(c *domain.Contact) *domain.Contact {
	if c == nil {
		return nil
	}
	return &domain.Contact{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
}

func validateContact(c *domain.Contact) error {
	if !c.IsComplete() {
		return fmt.Errorf("%w: name, email and phone are required", ErrInvalidInput)
	}

	if domain.IsReservedName(c.Name) {
		return fmt.Errorf("%w: name %q is reserved", ErrInvalidInput, c.Name)
	}

	if len(c.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if len(c.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if len(c.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	addr, err := mail.ParseAddress(c.Email)
	if err != nil || addr.Address != c.Email {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, c.Email)
	}

	return nil
}
