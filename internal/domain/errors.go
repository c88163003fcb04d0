package domain

import "errors"

// Ошибки хранилища бронирований, общие для всех реализаций
var (
	// ErrBookingNotFound возвращается, когда бронирование отсутствует в хранилище
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStoreUnavailable возвращается при сетевых ошибках, таймаутах и 5xx от хранилища
	ErrStoreUnavailable = errors.New("booking store unavailable")

	// ErrSlotTaken возвращается хранилищем, которое само отвергает пересекающуюся запись
	ErrSlotTaken = errors.New("booking slot already taken")
)
