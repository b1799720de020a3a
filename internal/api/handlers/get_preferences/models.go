package get_preferences

import (
	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

// PreferencesResponse текущие предпочтения устройства и доступные варианты
type PreferencesResponse struct {
	Language   domain.Language   `json:"language"`
	Currency   domain.Currency   `json:"currency"`
	Symbol     string            `json:"currencySymbol"`
	Languages  []domain.Language `json:"languages"`
	Currencies []domain.Currency `json:"currencies"`
}

// FromPreferences конвертирует предпочтения в HTTP ответ
func FromPreferences(p localization.Preferences) *PreferencesResponse {
	return &PreferencesResponse{
		Language:   p.Language,
		Currency:   p.Currency,
		Symbol:     p.Currency.Symbol(),
		Languages:  domain.Languages,
		Currencies: domain.Currencies,
	}
}
