package get_schedule_exceptions

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

type AvailabilityService interface {
	Exceptions(ctx context.Context, companyID, userID uuid.UUID) ([]*domain.ScheduleException, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
