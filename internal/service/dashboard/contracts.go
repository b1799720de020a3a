package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Company, error)
}

// ScheduleLoader загружает недельное расписание компании
type ScheduleLoader interface {
	LoadWeek(ctx context.Context, companyID uuid.UUID) (domain.Week, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
