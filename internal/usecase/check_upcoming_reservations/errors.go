package check_upcoming_reservations

import "errors"

var (
	// ErrQueryFailed возвращается, если не удалось получить резервации
	ErrQueryFailed = errors.New("check_upcoming_reservations: failed to query reservations")
)

// QueryError ошибка чтения резерваций, errors.Is(err, ErrQueryFailed) == true
type QueryError struct {
	Cause error
}

func (e *QueryError) Error() string {
	return ErrQueryFailed.Error() + ": " + e.Cause.Error()
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailed
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

// RawMessage возвращает сообщение исходной ошибки без префиксов слоев
// При нескольких обернутых ошибках берется последняя: sentinel слоя всегда идет первым
func (e *QueryError) RawMessage() string {
	err := e.Cause
	for {
		switch wrapped := err.(type) {
		case interface{ Unwrap() []error }:
			errs := wrapped.Unwrap()
			if len(errs) == 0 {
				return err.Error()
			}
			err = errs[len(errs)-1]
		case interface{ Unwrap() error }:
			next := wrapped.Unwrap()
			if next == nil {
				return err.Error()
			}
			err = next
		default:
			return err.Error()
		}
	}
}
