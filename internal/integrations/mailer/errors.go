package mailer

import "errors"

var (
	// ErrNoRecipient возвращается, когда у бронирования нет контакта
	ErrNoRecipient = errors.New("mailer: booking has no contact email")

	// ErrSendFailed возвращается при сетевой ошибке или отказе SendGrid
	ErrSendFailed = errors.New("mailer: send failed")
)
