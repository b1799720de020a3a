package session

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAuthFailed возвращается, когда сервис авторизации отклонил запрос
	ErrAuthFailed = errors.New("authentication failed")

	// ErrUnauthorized возвращается при недействительном токене доступа
	ErrUnauthorized = errors.New("unauthorized")

	// ErrProfileNotFound возвращается, когда у пользователя нет профиля
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("session service: internal error")
)

// FormError ошибка, сообщение которой показывается пользователю в форме как есть
type FormError struct {
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

// Is позволяет проверять FormError через errors.Is(err, ErrAuthFailed)
func (e *FormError) Is(target error) bool {
	return target == ErrAuthFailed
}
