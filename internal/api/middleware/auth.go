package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
)

var (
	ErrMissingToken = errors.New("middleware.auth: missing bearer token")
	ErrInvalidToken = errors.New("middleware.auth: invalid token")
)

// Auth проверяет bearer access token (HS256, общий секрет identity-бэкенда)
// и кладет ID пользователя (claim sub) в контекст запроса
func Auth(secret string) mux.MiddlewareFunc {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := handlers.BearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w)
				return
			}

			userID, err := ParseToken(token, key)
			if err != nil {
				handlers.RespondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, token)))
		})
	}
}

// ParseToken валидирует подпись и срок действия токена и возвращает subject
func ParseToken(tokenString string, key []byte) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, ErrMissingToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a uuid: %v", ErrInvalidToken, err)
	}

	return userID, nil
}
