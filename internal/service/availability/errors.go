package availability

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет компанией
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSaveFailed возвращается, если не удалось сохранить один из дней недели
	// Дни, сохраненные до ошибки, остаются сохраненными
	ErrSaveFailed = errors.New("failed to save schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
