package get_dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/service/dashboard/models"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

type DashboardService interface {
	Compose(ctx context.Context, userID uuid.UUID, prefs localization.Preferences) (*models.DashboardResponse, error)
}

type PreferencesLoader interface {
	Load(ctx context.Context, clientID, acceptLanguage string) localization.Preferences
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
