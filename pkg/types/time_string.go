package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeLayout формат времени HH:MM
const TimeLayout = "15:04"

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM
// Значения Postgres TIME ("09:00:00") обрезаются до HH:MM при сканировании
type TimeString string

// ParseTimeString проверяет формат HH:MM и возвращает TimeString
func ParseTimeString(s string) (TimeString, error) {
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Valid сообщает, соответствует ли значение формату HH:MM
func (t TimeString) Valid() bool {
	_, err := time.Parse(TimeLayout, string(t))
	return err == nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
	case []byte:
		*t = TimeString(truncate(string(v)))
	case string:
		*t = TimeString(truncate(v))
	case time.Time:
		*t = TimeString(v.Format(TimeLayout))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, value)
	}
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

func truncate(s string) string {
	if len(s) > len(TimeLayout) {
		return s[:len(TimeLayout)]
	}
	return s
}
