package localization

import (
	"fmt"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// Preferences текущие язык и валюта клиентского устройства
type Preferences struct {
	Language domain.Language
	Currency domain.Currency
}

// T возвращает перевод ключа на текущий язык
// Если перевода нет, возвращается сам ключ
func (p Preferences) T(key string) string {
	if value, ok := translations[p.Language][key]; ok {
		return value
	}
	return key
}

// Tf переводит ключ и подставляет аргументы в перевод
func (p Preferences) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(p.T(key), args...)
}

// DayName возвращает локализованное название дня недели (0 - воскресенье)
func (p Preferences) DayName(day int) string {
	if day < 0 || day >= domain.DaysInWeek {
		return ""
	}
	return p.T(dayNameKeys[day])
}

// FormatPrice форматирует цену с двумя знаками после запятой и символом валюты
// Пустая валюта заменяется валютой из предпочтений
func (p Preferences) FormatPrice(price float64, currency domain.Currency) string {
	if currency == "" {
		currency = p.Currency
	}
	return fmt.Sprintf("%.2f %s", price, currency.Symbol())
}
