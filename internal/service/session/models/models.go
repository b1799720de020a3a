package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/internal/domain"
)

// Request модели

// SignInRequest данные формы входа
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest данные формы регистрации
type SignUpRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     domain.UserRole `json:"role"`
	FullName string          `json:"fullName"`
	Phone    string          `json:"phone"`
}

// ResetPasswordRequest данные формы сброса пароля
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// Response модели

// SessionResponse выданная сессия
type SessionResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresIn    int       `json:"expiresIn"`
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
}

// SignUpResponse результат регистрации
// Session отсутствует, если сервис авторизации требует подтверждения email
type SignUpResponse struct {
	UserID  uuid.UUID        `json:"userId"`
	Profile *ProfileResponse `json:"profile"`
	Session *SessionResponse `json:"session,omitempty"`
}

// ProfileResponse профиль пользователя
type ProfileResponse struct {
	ID        uuid.UUID       `json:"id"`
	Role      domain.UserRole `json:"role"`
	FullName  string          `json:"fullName"`
	Phone     *string         `json:"phone,omitempty"`
	AvatarURL *string         `json:"avatarUrl,omitempty"`
}

// CurrentUserResponse текущий пользователь и его профиль
// Profile равен nil, если профиль еще не создан
type CurrentUserResponse struct {
	UserID  uuid.UUID        `json:"userId"`
	Email   string           `json:"email"`
	Profile *ProfileResponse `json:"profile"`
}

// Методы конвертации

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		ID:        p.ID,
		Role:      p.Role,
		FullName:  p.FullName,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
	}
}
