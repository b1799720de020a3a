package localization

import "errors"

var (
	// ErrInvalidLanguage возвращается при неподдерживаемом языке
	ErrInvalidLanguage = errors.New("unsupported language")

	// ErrInvalidCurrency возвращается при неподдерживаемой валюте
	ErrInvalidCurrency = errors.New("unsupported currency")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("localization service: internal error")
)
