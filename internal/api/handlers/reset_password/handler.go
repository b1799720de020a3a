package reset_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPlatform/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session"
	"github.com/m04kA/SMC-BookingPlatform/internal/service/session/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingEmail       = "email is required"
)

type Handler struct {
	service     SessionService
	preferences PreferencesLoader
	logger      Logger
}

func NewHandler(service SessionService, preferences PreferencesLoader, logger Logger) *Handler {
	return &Handler{
		service:     service,
		preferences: preferences,
		logger:      logger,
	}
}

// Handle POST /api/v1/auth/reset-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/reset-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		var formErr *session.FormError
		switch {
		case errors.As(err, &formErr):
			handlers.RespondBadRequest(w, formErr.Message)
		case errors.Is(err, session.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingEmail)
		default:
			h.logger.Error("POST /auth/reset-password - Failed to request reset: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	prefs := h.preferences.Load(r.Context(), handlers.ClientID(r), handlers.AcceptLanguage(r))
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: prefs.T("resetPassword.success")})
}
