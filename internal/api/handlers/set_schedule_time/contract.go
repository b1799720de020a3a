package set_schedule_time

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/localization"
	"github.com/m04kA/SMC-BookingPlatform/pkg/types"
)

type AvailabilityService interface {
	SetTime(ctx context.Context, companyID, userID uuid.UUID, day int, field domain.TimeField, value types.TimeString) (domain.Week, error)
}

type PreferencesLoader interface {
	Load(ctx context.Context, clientID, acceptLanguage string) localization.Preferences
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
