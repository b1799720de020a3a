package reset_password

import (
	"context"

	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session/models"
)

type SessionService interface {
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

type PreferencesLoader interface {
	Load(ctx context.Context, clientID, acceptLanguage string) localization.Preferences
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
