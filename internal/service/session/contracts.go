package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
	"github.com/m04kA/SMC-BookingPlatform/internal/integrations/authservice"
)

// AuthClient интерфейс клиента сервиса авторизации
type AuthClient interface {
	SignIn(ctx context.Context, creds authservice.Credentials) (*authservice.Session, error)
	SignUp(ctx context.Context, req authservice.SignUpRequest) (*authservice.SignUpResponse, error)
	SignOut(ctx context.Context, accessToken string) error
	ResetPassword(ctx context.Context, email string) error
	GetUser(ctx context.Context, accessToken string) (*authservice.User, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
