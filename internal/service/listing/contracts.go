package listing

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	ListActive(ctx context.Context, limit int) ([]*domain.Company, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
