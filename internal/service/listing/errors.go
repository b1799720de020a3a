package listing

import "errors"

var (
	// ErrLoadFailed возвращается, если не удалось загрузить компании или услуги
	ErrLoadFailed = errors.New("listing service: failed to load companies")
)
