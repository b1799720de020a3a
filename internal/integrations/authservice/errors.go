package authservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса авторизации
	ErrInvalidResponse = errors.New("authservice client: invalid response")

	// ErrUnauthorized возвращается, когда токен доступа недействителен или истек
	ErrUnauthorized = errors.New("authservice client: unauthorized")
)

// BackendError ошибка, сообщенная сервисом авторизации
// Message показывается пользователю как есть
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return e.Message
}
