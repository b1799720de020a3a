package update_preferences

import "github.com/m04kA/SMC-BookingPlatform/internal/domain"

// UpdatePreferencesRequest HTTP request model
// Непереданные поля не меняются
type UpdatePreferencesRequest struct {
	Language *domain.Language `json:"language,omitempty"`
	Currency *domain.Currency `json:"currency,omitempty"`
}
