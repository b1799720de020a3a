package preferences

import "errors"

var (
	// ErrReadStorage возвращается при ошибке чтения хранилища предпочтений
	ErrReadStorage = errors.New("preferences.storage: failed to read")

	// ErrWriteStorage возвращается при ошибке записи в хранилище предпочтений
	ErrWriteStorage = errors.New("preferences.storage: failed to write")
)
