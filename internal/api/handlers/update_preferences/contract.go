package update_preferences

import (
	"context"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

type LocalizationService interface {
	Load(ctx context.Context, clientID, acceptLanguage string) localization.Preferences
	SetLanguage(ctx context.Context, clientID string, lang domain.Language) error
	SetCurrency(ctx context.Context, clientID string, cur domain.Currency) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
