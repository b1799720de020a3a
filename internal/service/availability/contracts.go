package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*domain.Schedule, error)
	UpsertDay(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetExceptionsByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*domain.ScheduleException, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
