package scheduler

import (
	"context"

	uc "github.com/m04kA/SMC-BookingPlatform/internal/usecase/check_upcoming_reservations"
)

// ReminderChecker запускает проверку завтрашних резерваций
type ReminderChecker interface {
	Execute(ctx context.Context) (*uc.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
