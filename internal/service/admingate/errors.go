package admingate

import "errors"

var (
	// ErrInvalidCredential возвращается при неверном пароле администратора
	ErrInvalidCredential = errors.New("admingate: invalid credential")

	// ErrSession возвращается, когда не удалось закодировать сессионную cookie
	ErrSession = errors.New("admingate: session error")
)
