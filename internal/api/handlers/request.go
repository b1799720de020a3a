package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	// HeaderClientID идентификатор клиентского устройства для предпочтений
	HeaderClientID       = "X-Client-ID"
	HeaderAcceptLanguage = "Accept-Language"
)

// ClientID возвращает идентификатор устройства (пустая строка, если не передан)
func ClientID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(HeaderClientID))
}

// AcceptLanguage возвращает язык браузера
func AcceptLanguage(r *http.Request) string {
	return r.Header.Get(HeaderAcceptLanguage)
}

// PathUUID извлекает UUID из параметра пути
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// BearerToken извлекает токен из заголовка Authorization: Bearer <token>
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
