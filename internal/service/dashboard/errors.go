package dashboard

import "errors"

var (
	// ErrProfileNotFound возвращается, когда у пользователя нет профиля
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("dashboard service: internal error")
)
