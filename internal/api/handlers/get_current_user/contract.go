package get_current_user

import (
	"context"

	"github.com/m04kA/SMC-BookingPlatform/internal/service/session/models"
)

type SessionService interface {
	Current(ctx context.Context, accessToken string) (*models.CurrentUserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
