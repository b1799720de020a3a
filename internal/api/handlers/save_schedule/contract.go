package save_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
)

type AvailabilityService interface {
	Save(ctx context.Context, companyID, userID uuid.UUID, week domain.Week) error
}

type PreferencesLoader interface {
	Load(ctx context.Context, clientID, acceptLanguage string) localization.Preferences
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
