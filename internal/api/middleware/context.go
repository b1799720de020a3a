package middleware

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey      contextKey = "user_id"
	accessTokenKey contextKey = "access_token"
)

// WithUser кладет ID пользователя и его access token в контекст
func WithUser(ctx context.Context, userID uuid.UUID, token string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, accessTokenKey, token)
}

// GetUserID извлекает ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// GetAccessToken извлекает исходный bearer токен (нужен для вызовов identity-бэкенда)
func GetAccessToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey).(string)
	return token, ok && token != ""
}
